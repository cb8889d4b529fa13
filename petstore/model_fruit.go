package petstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/petstore-client/apiclient"
)

// Fruit holds exactly one of Apple or Banana.
type Fruit struct {
	Apple  *Apple
	Banana *Banana
}

var _ apiclient.Union = Fruit{}

// fruitOneOf lists the member schemas in declaration order.
var fruitOneOf = []string{"Apple", "Banana"}

func FruitFromApple(v *Apple) Fruit {
	return Fruit{Apple: v}
}

func FruitFromBanana(v *Banana) Fruit {
	return Fruit{Banana: v}
}

// GetActualInstance returns the member that is set, or nil. Apple wins when
// both are set; Validate rejects that state.
func (o Fruit) GetActualInstance() apiclient.Model {
	if o.Apple != nil {
		return o.Apple
	}
	if o.Banana != nil {
		return o.Banana
	}
	return nil
}

func (Fruit) ModelName() string { return "Fruit" }

// AttributeTypeMap is empty; the wire shape belongs to the actual instance.
func (Fruit) AttributeTypeMap() []apiclient.Attribute {
	return []apiclient.Attribute{}
}

// Validate requires exactly one member and validates it.
func (o Fruit) Validate() error {
	switch {
	case o.Apple != nil && o.Banana != nil:
		return fmt.Errorf("invalid Fruit: more than one of %s is set", strings.Join(fruitOneOf, ", "))
	case o.Apple != nil:
		return o.Apple.Validate()
	case o.Banana != nil:
		return o.Banana.Validate()
	}
	return fmt.Errorf("invalid Fruit: none of %s is set", strings.Join(fruitOneOf, ", "))
}

// UnmarshalJSON decodes data into the single member whose properties accept
// it. Data matching no member, or more than one, is rejected.
func (o *Fruit) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Fruit{}
		return nil
	}
	var matched []string
	var apple Apple
	if err := decodeStrict(data, &apple); err == nil {
		matched = append(matched, "Apple")
	}
	var banana Banana
	if err := decodeStrict(data, &banana); err == nil {
		matched = append(matched, "Banana")
	}
	switch len(matched) {
	case 0:
		return fmt.Errorf("data failed to match schemas in oneOf(Fruit)")
	case 1:
	default:
		return fmt.Errorf("data matches more than one schema in oneOf(Fruit): %s", strings.Join(matched, ", "))
	}
	if matched[0] == "Apple" {
		*o = Fruit{Apple: &apple}
	} else {
		*o = Fruit{Banana: &banana}
	}
	return nil
}

func (o Fruit) MarshalJSON() ([]byte, error) {
	if o.Apple != nil {
		return json.Marshal(o.Apple)
	}
	if o.Banana != nil {
		return json.Marshal(o.Banana)
	}
	return []byte("null"), nil
}

func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
