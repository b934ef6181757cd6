package mpu_test

import (
	"fmt"

	"omibyte.io/coresight/cortexm/mpu"
)

func ExampleRegionSizeFor() {
	for _, n := range []uint32{32, 4096, 3000} {
		size, err := mpu.RegionSizeFor(n)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%d bytes: SIZE %d\n", n, size)
	}
	// Output:
	// 32 bytes: SIZE 4
	// 4096 bytes: SIZE 11
	// region size cannot be encoded: 3000 is not a power of two
}
