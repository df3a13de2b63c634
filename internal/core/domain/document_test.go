package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewDocument_PreservesOrder(t *testing.T) {
	doc, err := domain.NewDocument("builtin:people", "abc", []domain.Entry{
		{Name: "Murrant", Attributes: domain.Attributes{"name": domain.StringValue("Murrant")}},
		{Name: "Gorian", Attributes: domain.Attributes{"name": domain.StringValue("Gorian")}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Murrant", "Gorian"}, doc.Names())
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, "builtin:people", doc.Source())
	assert.Equal(t, "abc", doc.Checksum())
}

func TestNewDocument_DuplicateEntry(t *testing.T) {
	_, err := domain.NewDocument("test", "", []domain.Entry{
		{Name: "Gorian"},
		{Name: "Gorian"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateEntry))
	assert.True(t, errors.Is(err, domain.ErrDescriptorLoad))

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Gorian", zErr.Metadata()["entry"])
}

func TestDocument_LookupReturnsCopy(t *testing.T) {
	doc, err := domain.NewDocument("test", "", []domain.Entry{
		{Name: "Gorian", Attributes: domain.Attributes{"food": domain.StringValue("pasta")}},
	})
	require.NoError(t, err)

	attrs, ok := doc.Lookup("Gorian")
	require.True(t, ok)
	attrs["food"] = domain.StringValue("pizza")

	again, _ := doc.Lookup("Gorian")
	food, _ := again["food"].Text()
	assert.Equal(t, "pasta", food)

	_, ok = doc.Lookup("Nobody")
	assert.False(t, ok)
}

func TestValue_Variants(t *testing.T) {
	s := domain.StringValue("apt")
	text, ok := s.Text()
	assert.True(t, ok)
	assert.Equal(t, "apt", text)
	_, ok = s.Items()
	assert.False(t, ok)

	l := domain.ListValue("snmpd", "snmp")
	items, ok := l.Items()
	assert.True(t, ok)
	assert.Equal(t, []string{"snmpd", "snmp"}, items)
	assert.Equal(t, "[snmpd, snmp]", l.String())

	b := domain.BoolValue(true)
	v, ok := b.Bool()
	assert.True(t, ok)
	assert.True(t, v)
	assert.Equal(t, "true", b.String())
	assert.Equal(t, "bool", b.Kind().String())
}
