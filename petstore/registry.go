package petstore

import (
	"sort"

	"github.com/mark3labs/petstore-client/apiclient"
)

var modelFactories = map[string]func() apiclient.Model{
	"Apple":                    func() apiclient.Model { return NewApple() },
	"Banana":                   func() apiclient.Model { return NewBanana() },
	"Client":                   func() apiclient.Model { return NewClient() },
	"Fruit":                    func() apiclient.Model { return &Fruit{} },
	"Pagination":               func() apiclient.Model { return NewPagination() },
	"PetByAge":                 func() apiclient.Model { return NewPetByAgeWithDefaults() },
	"PetByType":                func() apiclient.Model { return NewPetByTypeWithDefaults() },
	"PetsFilteredPatchRequest": func() apiclient.Model { return NewPetsFilteredPatchRequestWithDefaults() },
}

var operations = []apiclient.OperationInfo{
	{
		API:         "AnotherFakeAPI",
		OperationID: "123_test_@#$%_special_tags",
		Method:      "PATCH",
		Path:        "/another-fake/dummy",
		Statuses:    []int{200},
		Headers:     []apiclient.HeaderInfo{{Name: "uuid_test", Type: "uuid.UUID", Format: "uuid", Required: true}},
		Body:        &apiclient.BodyInfo{Model: "Client", ContentType: "application/json", Required: true},
		Accept:      "application/json",
	},
	{
		API:         "DefaultAPI",
		OperationID: "getFruit",
		Method:      "GET",
		Path:        "/example",
		Statuses:    []int{200},
		Accept:      "application/json",
	},
	{
		API:         "PetsAPI",
		OperationID: "petsFilteredPatch",
		Method:      "PATCH",
		Path:        "/pets-filtered",
		Statuses:    []int{200},
		Body:        &apiclient.BodyInfo{Model: "PetsFilteredPatchRequest", ContentType: "application/json"},
	},
}

// NewModel returns a zero instance of the named model.
func NewModel(name string) (apiclient.Model, bool) {
	f, ok := modelFactories[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Models describes every model in the package, sorted by name.
func Models() []apiclient.ModelInfo {
	names := make([]string, 0, len(modelFactories))
	for name := range modelFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]apiclient.ModelInfo, 0, len(names))
	for _, name := range names {
		m := modelFactories[name]()
		info := apiclient.ModelInfo{
			Name:       name,
			Attributes: m.AttributeTypeMap(),
			Enums:      modelEnums(name),
		}
		if name == "Fruit" {
			info.OneOf = append([]string(nil), fruitOneOf...)
		}
		out = append(out, info)
	}
	return out
}

// Operations describes every operation in the package, sorted by API then
// operation ID.
func Operations() []apiclient.OperationInfo {
	out := make([]apiclient.OperationInfo, len(operations))
	for i, op := range operations {
		op.Statuses = append([]int(nil), op.Statuses...)
		if op.Headers != nil {
			op.Headers = append([]apiclient.HeaderInfo(nil), op.Headers...)
		}
		if op.Body != nil {
			body := *op.Body
			op.Body = &body
		}
		out[i] = op
	}
	return out
}

func modelEnums(name string) []apiclient.EnumInfo {
	switch name {
	case "PetByType":
		return []apiclient.EnumInfo{{
			Name:   "PetByTypePetTypeEnum",
			Values: PetByTypePetTypeEnum("").EnumValues(),
		}}
	case "PetsFilteredPatchRequest":
		return []apiclient.EnumInfo{{
			Name:   "PetsFilteredPatchRequestPetTypeEnum",
			Values: PetsFilteredPatchRequestPetTypeEnum("").EnumValues(),
		}}
	}
	return nil
}
