// Package svd decodes CMSIS System View Description files into register maps.
//
// Besides the standard elements, fields may carry a <composedFrom field=""
// index=""/> element that derives the field offset from another field, and a
// <range name=""/> element that marks a dense value range. Peripherals may
// carry a <binding symbol="" offset=""/> element naming the base address the
// peripheral is anchored to.
package svd

// DeviceElement is the root of an SVD document. RegisterSize and ResetValue
// are the defaults of every register that does not set its own.
type DeviceElement struct {
	Name          string             `xml:"name"`
	Description   string             `xml:"description"`
	RegisterSize  *Integer           `xml:"size"`
	DefaultAccess string             `xml:"access"`
	ResetValue    *Integer           `xml:"resetValue"`
	Peripherals   PeripheralsElement `xml:"peripherals"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

func (p PeripheralsElement) Find(name string) (int, bool) {
	if len(name) > 0 {
		for i, pp := range p.Elements {
			if pp.Name == name {
				return i, true
			}
		}
	}
	return -1, false
}

type PeripheralElement struct {
	Name         string              `xml:"name"`
	Description  string              `xml:"description"`
	BaseAddress  Integer             `xml:"baseAddress"`
	Binding      *BindingElement     `xml:"binding"`
	AddressBlock AddressBlockElement `xml:"addressBlock"`
	RegisterSize *Integer            `xml:"size"`
	Access       string              `xml:"access"`
	ResetValue   *Integer            `xml:"resetValue"`
	Registers    RegistersElement    `xml:"registers"`
	DerivedFrom  string              `xml:"derivedFrom,attr"`
}

type BindingElement struct {
	Symbol string  `xml:"symbol,attr"`
	Offset Integer `xml:"offset,attr"`
}

type AddressBlockElement struct {
	Offset Integer `xml:"offset"`
	Size   Integer `xml:"size"`
}

type RegistersElement struct {
	RegisterElements []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string        `xml:"name"`
	Description   string        `xml:"description"`
	AddressOffset Integer       `xml:"addressOffset"`
	Size          *Integer      `xml:"size"`
	Access        string        `xml:"access"`
	ResetValue    *Integer      `xml:"resetValue"`
	Fields        FieldElements `xml:"fields"`
	Count         Integer       `xml:"dim"`
	Increment     Integer       `xml:"dimIncrement"`
	Alternative   string        `xml:"alternateRegister"`
	Bank          *Integer      `xml:"bank"`
	DerivedFrom   string        `xml:"derivedFrom,attr"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                   `xml:"name"`
	Description      string                   `xml:"description"`
	BitOffset        Integer                  `xml:"bitOffset"`
	BitWidth         Integer                  `xml:"bitWidth"`
	Access           string                   `xml:"access"`
	ComposedFrom     *CompositionElement      `xml:"composedFrom"`
	Range            *RangeElement            `xml:"range"`
	EnumeratedValues *EnumeratedValuesElement `xml:"enumeratedValues"`
}

type CompositionElement struct {
	Field string  `xml:"field,attr"`
	Index Integer `xml:"index,attr"`
}

type RangeElement struct {
	Name string `xml:"name,attr"`
}

type EnumeratedValuesElement struct {
	Name        string                   `xml:"name"`
	DerivedFrom string                   `xml:"derivedFrom,attr"`
	Elements    []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}
