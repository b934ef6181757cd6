package svd

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Integer is an SVD scalar written in decimal or with a 0x prefix.
type Integer int64

func parseInteger(v string) (Integer, error) {
	v = strings.ReplaceAll(strings.TrimSpace(v), "X", "x")

	var value int64
	var err error
	if strings.HasPrefix(v, "0x") {
		var u uint64
		u, err = strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
		value = int64(u)
	} else {
		value, err = strconv.ParseInt(v, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	return Integer(value), nil
}

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	var v string
	if err = d.DecodeElement(&v, &start); err != nil {
		return err
	}
	*i, err = parseInteger(v)
	return err
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) (err error) {
	*i, err = parseInteger(attr.Value)
	return err
}
