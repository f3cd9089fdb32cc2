package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cxpack/internal/core/domain"
	"go.trai.ch/cxpack/internal/engine/model"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		pageModel,
		`<catalog/>`,
		`<?xml version="1.0"?><!DOCTYPE catalog><catalog xmlns:x="urn:x"><x:page x:id="1">a &lt; b &amp; c</x:page><?keep this?></catalog><!-- tail -->` + "\n",
		`<catalog><page title="say &quot;hi&quot;"/></catalog>`,
	}

	for _, input := range inputs {
		doc, err := model.ParseString(input)
		require.NoError(t, err)
		assert.Equal(t, input, string(doc.Bytes()))

		again, err := model.ParseString(string(doc.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, doc.Bytes(), again.Bytes())
	}
}

func TestParse_PrefixedNames(t *testing.T) {
	doc, err := model.ParseString(`<cx:catalog xmlns:cx="urn:cx"><cx:page/></cx:catalog>`)
	require.NoError(t, err)
	assert.Equal(t, "cx:catalog", doc.Root.Tag())
	assert.NotNil(t, doc.Root.Child("cx:page"))

	v, ok := doc.Root.Attribute("xmlns:cx")
	require.True(t, ok)
	assert.Equal(t, "urn:cx", v)
}

func TestParse_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty":          ``,
		"unclosed":       `<catalog><page>`,
		"mismatched":     `<catalog></page>`,
		"two roots":      `<catalog/><catalog/>`,
		"stray text":     `hello<catalog/>`,
		"bad attribute":  `<catalog a=1/>`,
		"only a comment": `<!-- nothing -->`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := model.ParseString(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedDocument)
		})
	}
}

func TestElement_SetAttribute(t *testing.T) {
	el := model.NewElement("value")
	el.SetAttribute("type", "url")
	el.SetAttribute("lang", "en")
	el.SetAttribute("type", "string")

	v, ok := el.Attribute("type")
	require.True(t, ok)
	assert.Equal(t, "string", v)
	require.Len(t, el.Attr, 2)
	assert.Equal(t, "type", el.Attr[0].Name.Local)
}
