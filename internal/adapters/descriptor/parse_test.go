package descriptor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lnms-install/internal/adapters/descriptor"
	"go.trai.ch/lnms-install/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`
debian:
  name: debian
  package_manager: apt
  snmpd_pkgs: [snmpd, snmp]
  legacy: true
  release: 12
  note: ~
ubuntu:
  name: ubuntu
  package_manager: apt
`)

	doc, err := descriptor.Parse("test.yaml", data)
	require.NoError(t, err)

	assert.Equal(t, "test.yaml", doc.Source())
	assert.Len(t, doc.Checksum(), 16)
	assert.Equal(t, []string{"debian", "ubuntu"}, doc.Names())

	attrs, ok := doc.Lookup("debian")
	require.True(t, ok)

	name, isText := attrs["name"].Text()
	assert.True(t, isText)
	assert.Equal(t, "debian", name)

	pkgs, isList := attrs["snmpd_pkgs"].Items()
	assert.True(t, isList)
	assert.Equal(t, []string{"snmpd", "snmp"}, pkgs)

	legacy, isBool := attrs["legacy"].Bool()
	assert.True(t, isBool)
	assert.True(t, legacy)

	release, _ := attrs["release"].Text()
	assert.Equal(t, "12", release)

	_, hasNote := attrs["note"]
	assert.False(t, hasNote, "null attributes are treated as absent")
}

func TestParse_ChecksumIsStable(t *testing.T) {
	data := []byte("a:\n  name: a\n")

	first, err := descriptor.Parse("one", data)
	require.NoError(t, err)
	second, err := descriptor.Parse("two", data)
	require.NoError(t, err)
	other, err := descriptor.Parse("three", []byte("b:\n  name: b\n"))
	require.NoError(t, err)

	assert.Equal(t, first.Checksum(), second.Checksum())
	assert.NotEqual(t, first.Checksum(), other.Checksum())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty text",
			data:    "   \n",
			wantErr: domain.ErrEmptyDescriptor,
		},
		{
			name:    "comments only",
			data:    "# nothing here\n",
			wantErr: domain.ErrEmptyDescriptor,
		},
		{
			name:    "null document",
			data:    "~\n",
			wantErr: domain.ErrEmptyDescriptor,
		},
		{
			name:    "invalid yaml",
			data:    "a: [unterminated\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name: "python object tag",
			data: `!!python/object:__main__.Person
Gorian:
  name: Gorian
  food: pasta
`,
			wantErr: domain.ErrUnsupportedTag,
		},
		{
			name:    "local tag on value",
			data:    "a:\n  name: !shell rm -rf /\n",
			wantErr: domain.ErrUnsupportedTag,
		},
		{
			name:    "second document",
			data:    "a:\n  name: a\n---\n!!python/object:__main__.P\nb:\n  name: b\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "top level sequence",
			data:    "- a\n- b\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "entry is scalar",
			data:    "a: b\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "nested mapping",
			data:    "a:\n  name: a\n  extra:\n    deep: true\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "list of mappings",
			data:    "a:\n  pkgs:\n    - name: x\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "alias",
			data:    "a: &base\n  name: a\nb: *base\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "duplicate attribute",
			data:    "a:\n  name: a\n  name: b\n",
			wantErr: domain.ErrMalformedDescriptor,
		},
		{
			name:    "duplicate entry",
			data:    "a:\n  name: a\na:\n  name: b\n",
			wantErr: domain.ErrDuplicateEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := descriptor.Parse("test.yaml", []byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrDescriptorLoad)
		})
	}
}

func TestParse_UnsupportedTagMetadata(t *testing.T) {
	_, err := descriptor.Parse("remote", []byte("!!python/object:__main__.Person\na:\n  name: a\n"))
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	meta := zErr.Metadata()
	assert.Equal(t, "!!python/object:__main__.Person", meta["tag"])
	assert.Equal(t, "remote", meta["source"])
}
