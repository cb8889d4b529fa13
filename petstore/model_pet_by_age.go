package petstore

import (
	"bytes"
	"encoding/json"

	"github.com/mark3labs/petstore-client/apiclient"
)

// PetByAge selects pets by age.
type PetByAge struct {
	Age      int32   `json:"age"`
	Nickname *string `json:"nickname,omitempty"`
}

var petByAgeAttributeTypeMap = []apiclient.Attribute{
	{Name: "Age", BaseName: "age", Type: "int32", Format: "", Required: true},
	{Name: "Nickname", BaseName: "nickname", Type: "string", Format: ""},
}

func NewPetByAge(age int32) *PetByAge {
	return &PetByAge{Age: age}
}

func NewPetByAgeWithDefaults() *PetByAge {
	return &PetByAge{}
}

func (o *PetByAge) GetAge() int32 {
	if o == nil {
		return 0
	}
	return o.Age
}

func (o *PetByAge) SetAge(v int32) { o.Age = v }

func (o *PetByAge) GetNickname() string {
	if o == nil || o.Nickname == nil {
		return ""
	}
	return *o.Nickname
}

func (o *PetByAge) GetNicknameOk() (*string, bool) {
	if o == nil || o.Nickname == nil {
		return nil, false
	}
	return o.Nickname, true
}

func (o *PetByAge) HasNickname() bool { return o != nil && o.Nickname != nil }

func (o *PetByAge) SetNickname(v string) { o.Nickname = &v }

func (PetByAge) ModelName() string { return "PetByAge" }

func (PetByAge) AttributeTypeMap() []apiclient.Attribute {
	return copyAttributes(petByAgeAttributeTypeMap)
}

func (o PetByAge) Validate() error {
	return apiclient.Validate(o)
}

func (o *PetByAge) UnmarshalJSON(data []byte) error {
	if err := requireProperties(data, "age"); err != nil {
		return err
	}
	type plain PetByAge
	var v plain
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return err
	}
	*o = PetByAge(v)
	return nil
}
