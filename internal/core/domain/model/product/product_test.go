package product_test

import (
	"testing"

	"mestrack/internal/core/domain/model/kernel"
	"mestrack/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), "PRD-001", "Widget", "")
	require.NoError(t, err)
	return p
}

func newTestProcess(t *testing.T, name string, sequence int) product.Process {
	t.Helper()

	process, err := product.NewProcess(kernel.NewUUID(), name, sequence)
	require.NoError(t, err)
	return process
}

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "PRD-001", "Widget", "standard widget")
	require.NoError(t, err)

	assert.Equal(t, "PRD-001", p.Code())
	assert.Equal(t, "Widget", p.Name())
	assert.Equal(t, "standard widget", p.Description())
	assert.Empty(t, p.Routing())
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := product.NewProduct(kernel.NewUUID(), "", "Widget", "")
	require.Error(t, err, "empty code")

	_, err = product.NewProduct(kernel.NewUUID(), "PRD-001", "", "")
	require.Error(t, err, "empty name")
}

func TestProduct_AddProcess_SortsBySequence(t *testing.T) {
	p := newTestProduct(t)

	// Added out of order on purpose.
	require.NoError(t, p.AddProcess(newTestProcess(t, "Packaging", 30)))
	require.NoError(t, p.AddProcess(newTestProcess(t, "Cutting", 10)))
	require.NoError(t, p.AddProcess(newTestProcess(t, "Assembly", 20)))

	routing := p.Routing()
	require.Len(t, routing, 3)
	assert.Equal(t, "Cutting", routing[0].Name())
	assert.Equal(t, "Assembly", routing[1].Name())
	assert.Equal(t, "Packaging", routing[2].Name())
}

func TestProduct_AddProcess_DuplicateSequence(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.AddProcess(newTestProcess(t, "Cutting", 10)))
	err := p.AddProcess(newTestProcess(t, "Grinding", 10))
	require.ErrorIs(t, err, product.ErrDuplicateSequence)
	require.Len(t, p.Routing(), 1)
}

func TestProduct_AddProcess_SequenceGapsAllowed(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.AddProcess(newTestProcess(t, "Molding", 100)))
	require.NoError(t, p.AddProcess(newTestProcess(t, "Trimming", 550)))
	require.Len(t, p.Routing(), 2)
}

func TestProduct_Routing_ReturnsCopy(t *testing.T) {
	p := newTestProduct(t)
	require.NoError(t, p.AddProcess(newTestProcess(t, "Cutting", 10)))
	require.NoError(t, p.AddProcess(newTestProcess(t, "Assembly", 20)))

	routing := p.Routing()
	routing[0], routing[1] = routing[1], routing[0]

	fresh := p.Routing()
	assert.Equal(t, "Cutting", fresh[0].Name())
}

func TestNewProcess_Invalid(t *testing.T) {
	_, err := product.NewProcess(kernel.NewUUID(), "", 10)
	require.Error(t, err, "empty name")

	_, err = product.NewProcess(kernel.NewUUID(), "Cutting", 0)
	require.Error(t, err, "non-positive sequence")
}
