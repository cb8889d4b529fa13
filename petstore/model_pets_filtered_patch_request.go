package petstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/petstore-client/apiclient"
)

// PetsFilteredPatchRequest is the body of PetsFilteredPatch. It merges the
// properties of PetByAge and PetByType.
type PetsFilteredPatchRequest struct {
	Age      int32                               `json:"age"`
	Nickname *string                             `json:"nickname,omitempty"`
	PetType  PetsFilteredPatchRequestPetTypeEnum `json:"pet_type"`
	Hunts    *bool                               `json:"hunts,omitempty"`
}

var petsFilteredPatchRequestAttributeTypeMap = []apiclient.Attribute{
	{Name: "Age", BaseName: "age", Type: "int32", Format: "", Required: true},
	{Name: "Nickname", BaseName: "nickname", Type: "string", Format: ""},
	{Name: "PetType", BaseName: "pet_type", Type: "PetsFilteredPatchRequestPetTypeEnum", Format: "", Required: true},
	{Name: "Hunts", BaseName: "hunts", Type: "bool", Format: ""},
}

// NewPetsFilteredPatchRequest instantiates a PetsFilteredPatchRequest with
// its required properties set.
func NewPetsFilteredPatchRequest(age int32, petType PetsFilteredPatchRequestPetTypeEnum) *PetsFilteredPatchRequest {
	return &PetsFilteredPatchRequest{Age: age, PetType: petType}
}

// NewPetsFilteredPatchRequestWithDefaults instantiates a PetsFilteredPatchRequest
// with zero values; required properties must be assigned before sending.
func NewPetsFilteredPatchRequestWithDefaults() *PetsFilteredPatchRequest {
	return &PetsFilteredPatchRequest{}
}

func (o *PetsFilteredPatchRequest) GetAge() int32 {
	if o == nil {
		return 0
	}
	return o.Age
}

func (o *PetsFilteredPatchRequest) SetAge(v int32) { o.Age = v }

func (o *PetsFilteredPatchRequest) GetNickname() string {
	if o == nil || o.Nickname == nil {
		return ""
	}
	return *o.Nickname
}

func (o *PetsFilteredPatchRequest) GetNicknameOk() (*string, bool) {
	if o == nil || o.Nickname == nil {
		return nil, false
	}
	return o.Nickname, true
}

func (o *PetsFilteredPatchRequest) HasNickname() bool {
	return o != nil && o.Nickname != nil
}

func (o *PetsFilteredPatchRequest) SetNickname(v string) { o.Nickname = &v }

func (o *PetsFilteredPatchRequest) GetPetType() PetsFilteredPatchRequestPetTypeEnum {
	if o == nil {
		return ""
	}
	return o.PetType
}

func (o *PetsFilteredPatchRequest) SetPetType(v PetsFilteredPatchRequestPetTypeEnum) { o.PetType = v }

func (o *PetsFilteredPatchRequest) GetHunts() bool {
	if o == nil || o.Hunts == nil {
		return false
	}
	return *o.Hunts
}

func (o *PetsFilteredPatchRequest) GetHuntsOk() (*bool, bool) {
	if o == nil || o.Hunts == nil {
		return nil, false
	}
	return o.Hunts, true
}

func (o *PetsFilteredPatchRequest) HasHunts() bool {
	return o != nil && o.Hunts != nil
}

func (o *PetsFilteredPatchRequest) SetHunts(v bool) { o.Hunts = &v }

func (PetsFilteredPatchRequest) ModelName() string { return "PetsFilteredPatchRequest" }

func (PetsFilteredPatchRequest) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(petsFilteredPatchRequestAttributeTypeMap)
}

// Validate checks required properties, formats and enum membership.
func (o PetsFilteredPatchRequest) Validate() error {
	return apiclient.Validate(o)
}

func (o *PetsFilteredPatchRequest) UnmarshalJSON(data []byte) error {
	if err := requireProperties(data, "age", "pet_type"); err != nil {
		return err
	}
	type plain PetsFilteredPatchRequest
	var v plain
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return err
	}
	*o = PetsFilteredPatchRequest(v)
	return nil
}

// PetsFilteredPatchRequestPetTypeEnum lists the values of PetsFilteredPatchRequest.PetType.
type PetsFilteredPatchRequestPetTypeEnum string

const (
	PetsFilteredPatchRequestPetTypeEnumCat PetsFilteredPatchRequestPetTypeEnum = "Cat"
	PetsFilteredPatchRequestPetTypeEnumDog PetsFilteredPatchRequestPetTypeEnum = "Dog"
)

// AllowedPetsFilteredPatchRequestPetTypeEnumEnumValues holds every declared literal.
var AllowedPetsFilteredPatchRequestPetTypeEnumEnumValues = []PetsFilteredPatchRequestPetTypeEnum{
	PetsFilteredPatchRequestPetTypeEnumCat,
	PetsFilteredPatchRequestPetTypeEnumDog,
}

// NewPetsFilteredPatchRequestPetTypeEnumFromValue returns a pointer to a valid
// PetsFilteredPatchRequestPetTypeEnum for v, or an error when v is not declared.
func NewPetsFilteredPatchRequestPetTypeEnumFromValue(v string) (*PetsFilteredPatchRequestPetTypeEnum, error) {
	ev := PetsFilteredPatchRequestPetTypeEnum(v)
	if ev.IsValid() {
		return &ev, nil
	}
	return nil, fmt.Errorf("invalid value '%v' for PetsFilteredPatchRequestPetTypeEnum: valid values are %v", v, AllowedPetsFilteredPatchRequestPetTypeEnumEnumValues)
}

func (v PetsFilteredPatchRequestPetTypeEnum) IsValid() bool {
	for _, existing := range AllowedPetsFilteredPatchRequestPetTypeEnumEnumValues {
		if existing == v {
			return true
		}
	}
	return false
}

func (v PetsFilteredPatchRequestPetTypeEnum) EnumValues() []string {
	return enumStrings(AllowedPetsFilteredPatchRequestPetTypeEnumEnumValues)
}

func (v PetsFilteredPatchRequestPetTypeEnum) Ptr() *PetsFilteredPatchRequestPetTypeEnum {
	return &v
}

func (v *PetsFilteredPatchRequestPetTypeEnum) UnmarshalJSON(src []byte) error {
	var value string
	if err := json.Unmarshal(src, &value); err != nil {
		return err
	}
	ev, err := NewPetsFilteredPatchRequestPetTypeEnumFromValue(value)
	if err != nil {
		return err
	}
	*v = *ev
	return nil
}
