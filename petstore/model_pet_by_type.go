package petstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/petstore-client/apiclient"
)

// PetByType selects pets by kind.
type PetByType struct {
	PetType PetByTypePetTypeEnum `json:"pet_type"`
	Hunts   *bool                `json:"hunts,omitempty"`
}

var petByTypeAttributeTypeMap = []apiclient.Attribute{
	{Name: "PetType", BaseName: "pet_type", Type: "PetByTypePetTypeEnum", Format: "", Required: true},
	{Name: "Hunts", BaseName: "hunts", Type: "bool", Format: ""},
}

func NewPetByType(petType PetByTypePetTypeEnum) *PetByType {
	return &PetByType{PetType: petType}
}

func NewPetByTypeWithDefaults() *PetByType {
	return &PetByType{}
}

func (o *PetByType) GetPetType() PetByTypePetTypeEnum {
	if o == nil {
		return ""
	}
	return o.PetType
}

func (o *PetByType) SetPetType(v PetByTypePetTypeEnum) { o.PetType = v }

func (o *PetByType) GetHunts() bool {
	if o == nil || o.Hunts == nil {
		return false
	}
	return *o.Hunts
}

func (o *PetByType) GetHuntsOk() (*bool, bool) {
	if o == nil || o.Hunts == nil {
		return nil, false
	}
	return o.Hunts, true
}

func (o *PetByType) HasHunts() bool { return o != nil && o.Hunts != nil }

func (o *PetByType) SetHunts(v bool) { o.Hunts = &v }

func (PetByType) ModelName() string { return "PetByType" }

func (PetByType) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(petByTypeAttributeTypeMap)
}

func (o PetByType) Validate() error {
	return apiclient.Validate(o)
}

func (o *PetByType) UnmarshalJSON(data []byte) error {
	if err := requireProperties(data, "pet_type"); err != nil {
		return err
	}
	type plain PetByType
	var v plain
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return err
	}
	*o = PetByType(v)
	return nil
}

// PetByTypePetTypeEnum lists the values of PetByType.PetType.
type PetByTypePetTypeEnum string

const (
	PetByTypePetTypeEnumCat PetByTypePetTypeEnum = "Cat"
	PetByTypePetTypeEnumDog PetByTypePetTypeEnum = "Dog"
)

var AllowedPetByTypePetTypeEnumEnumValues = []PetByTypePetTypeEnum{
	PetByTypePetTypeEnumCat,
	PetByTypePetTypeEnumDog,
}

func NewPetByTypePetTypeEnumFromValue(v string) (*PetByTypePetTypeEnum, error) {
	ev := PetByTypePetTypeEnum(v)
	if ev.IsValid() {
		return &ev, nil
	}
	return nil, fmt.Errorf("invalid value '%v' for PetByTypePetTypeEnum: valid values are %v", v, AllowedPetByTypePetTypeEnumEnumValues)
}

func (v PetByTypePetTypeEnum) IsValid() bool {
	for _, existing := range AllowedPetByTypePetTypeEnumEnumValues {
		if existing == v {
			return true
		}
	}
	return false
}

func (v PetByTypePetTypeEnum) EnumValues() []string {
	return enumStrings(AllowedPetByTypePetTypeEnumEnumValues)
}

func (v PetByTypePetTypeEnum) Ptr() *PetByTypePetTypeEnum { return &v }

func (v *PetByTypePetTypeEnum) UnmarshalJSON(src []byte) error {
	var value string
	if err := json.Unmarshal(src, &value); err != nil {
		return err
	}
	ev, err := NewPetByTypePetTypeEnumFromValue(value)
	if err != nil {
		return err
	}
	*v = *ev
	return nil
}
