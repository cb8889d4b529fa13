package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/petstore-client/apiclient"
	"github.com/mark3labs/petstore-client/petstore"
)

// fixture lists models and operations out of order to exercise sorting.
func fixture() Catalog {
	return Catalog{
		Title:   "Fixture",
		Version: "1.0.0",
		Models: []apiclient.ModelInfo{
			{
				Name: "Pet",
				Attributes: []apiclient.Attribute{
					{Name: "Link", BaseName: "link", Type: "string", Format: "url", Nullable: true},
					{Name: "Kind", BaseName: "kind", Type: "PetKindEnum", Required: true},
				},
				Enums: []apiclient.EnumInfo{{Name: "PetKindEnum", Values: []string{"Cat", "Dog"}}},
			},
			{
				Name:       "Client",
				Attributes: []apiclient.Attribute{{Name: "Client", BaseName: "client", Type: "string"}},
			},
		},
		Operations: []apiclient.OperationInfo{
			{API: "PetsAPI", OperationID: "listPets", Method: "GET", Path: "/pets", Statuses: []int{200, 404}},
			{
				API:         "PetsAPI",
				OperationID: "addPet",
				Method:      "POST",
				Path:        "/pets",
				Statuses:    []int{201},
				Headers: []apiclient.HeaderInfo{
					{Name: "X-Trace", Type: "string"},
					{Name: "Idempotency-Key", Type: "uuid.UUID", Format: "uuid", Required: true},
				},
				Body:   &apiclient.BodyInfo{Model: "Pet", ContentType: "application/json", Required: true},
				Accept: "application/json",
			},
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEmit_Golden(t *testing.T) {
	dir := t.TempDir()
	res, err := Emit(context.Background(), fixture(), Options{OutDir: dir, Formats: []string{"json", "yaml"}})
	require.NoError(t, err)
	require.Len(t, res.Planned, 3)

	g := newGoldie(t)
	for _, name := range []string{"catalog.yaml", "models.json", "operations.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		g.Assert(t, name, data)
	}
}

func TestEmit_DryRun_Plan(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	res, err := Emit(context.Background(), fixture(), Options{OutDir: dir, DryRun: true})
	require.NoError(t, err)

	var rels []string
	for _, pf := range res.Planned {
		rels = append(rels, pf.RelPath)
		assert.Equal(t, os.FileMode(0o644), pf.Mode)
		assert.Positive(t, pf.Size)
	}
	assert.Equal(t, []string{"models.json", "operations.json"}, rels, "json is the default format")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry-run writes nothing")
}

func TestEmit_NoForce_NonEmptyDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o600))

	_, err := Emit(context.Background(), fixture(), Options{OutDir: dir})
	require.Error(t, err)

	_, err = Emit(context.Background(), fixture(), Options{OutDir: dir, Force: true})
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "models.json"))
	assert.NoError(t, err)
}

func TestEmit_RejectsBadOptions(t *testing.T) {
	t.Parallel()
	_, err := Emit(context.Background(), fixture(), Options{})
	assert.Error(t, err)
	_, err = Emit(context.Background(), fixture(), Options{OutDir: t.TempDir(), Formats: []string{"xml"}})
	assert.Error(t, err)
}

func TestEmit_PetstoreCatalogRoundTrips(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := Catalog{Title: "Example", Version: "1.0.0", Models: petstore.Models(), Operations: petstore.Operations()}

	_, err := Emit(context.Background(), in, Options{OutDir: dir, Formats: []string{"yaml", "json"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "models.json"))
	require.NoError(t, err)
	var models []apiclient.ModelInfo
	require.NoError(t, json.Unmarshal(data, &models))
	assert.Equal(t, sorted(in).Models, models)

	data, err = os.ReadFile(filepath.Join(dir, "catalog.yaml"))
	require.NoError(t, err)
	var out Catalog
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, petstore.Operations(), out.Operations)
}

func TestEmit_Deterministic(t *testing.T) {
	t.Parallel()
	first, second := t.TempDir(), t.TempDir()
	c := fixture()
	_, err := Emit(context.Background(), c, Options{OutDir: first, Formats: []string{"json", "yaml"}})
	require.NoError(t, err)
	c.Models[0], c.Models[1] = c.Models[1], c.Models[0]
	_, err = Emit(context.Background(), c, Options{OutDir: second, Formats: []string{"json", "yaml"}})
	require.NoError(t, err)

	for _, name := range []string{"catalog.yaml", "models.json", "operations.json"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}

func TestSorted_NormalizesNestedOrder(t *testing.T) {
	t.Parallel()
	in := fixture()
	in.Models = append(in.Models, apiclient.ModelInfo{Name: "Empty"})
	out := sorted(in)

	assert.Equal(t, "kind", out.Models[2].Attributes[0].BaseName)
	assert.Equal(t, "link", out.Models[2].Attributes[1].BaseName)
	assert.Equal(t, "link", in.Models[0].Attributes[0].BaseName, "input is not reordered")
	assert.NotNil(t, out.Models[1].Attributes)
	assert.Empty(t, out.Models[1].Attributes)
	assert.Equal(t, "addPet", out.Operations[0].OperationID)
	assert.Equal(t, "Idempotency-Key", out.Operations[0].Headers[0].Name)
}
