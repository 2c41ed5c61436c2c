package view

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formdemo/internal/model"
)

func render(t *testing.T, page string, data any) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, data))
	return buf.String()
}

func TestNewParsesAllPages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{
		CalculatorForm, CalculatorResults, Error,
		FavoritesForm, FavoritesResults, FroyoForm, FroyoResults,
		Home, HoroscopeForm, HoroscopeResults, MessageForm, MessageResults,
	}, r.Pages())
}

func TestStaticPages(t *testing.T) {
	cases := map[string]string{
		Home:           `href="/calculator"`,
		FroyoForm:      `action="/froyo_results"`,
		FavoritesForm:  `action="/favorites_results"`,
		MessageForm:    `method="POST"`,
		CalculatorForm: `name="operation"`,
		HoroscopeForm:  `value="sagittarius"`,
	}
	for page, want := range cases {
		out := render(t, page, nil)
		assert.Contains(t, out, "<!DOCTYPE html>", page)
		assert.Contains(t, out, want, page)
	}
}

func TestFroyoResults(t *testing.T) {
	out := render(t, FroyoResults, &model.FroyoOrder{Flavor: "mango", Toppings: []string{"mochi", "<b>"}})
	assert.Contains(t, out, "<strong>mango</strong>")
	assert.Contains(t, out, "<li>mochi</li>")
	assert.Contains(t, out, "<li>&lt;b&gt;</li>")

	out = render(t, FroyoResults, &model.FroyoOrder{Flavor: "plain", Toppings: []string{}})
	assert.Contains(t, out, "with no toppings.")
}

func TestFavoritesResults(t *testing.T) {
	out := render(t, FavoritesResults, &model.Favorites{Color: "red", Animal: "fox", City: "Oslo"})
	assert.Contains(t, out, "red foxs lived in Oslo")
}

func TestMessageResults(t *testing.T) {
	out := render(t, MessageResults, &model.SecretMessage{Message: "cab", Sorted: "abc"})
	assert.Contains(t, out, "<code>cab</code>")
	assert.Contains(t, out, "<code>abc</code>")
}

func TestCalculatorResults(t *testing.T) {
	out := render(t, CalculatorResults, CalculatorPage{Calc: &model.Calculation{
		Operand1: 6, Operand2: 3, Operation: model.OpDivide, Result: 2,
	}})
	assert.Contains(t, out, "6 ÷ 3 = <strong>2</strong>")

	out = render(t, CalculatorResults, CalculatorPage{Error: "Error: Division by zero"})
	assert.Contains(t, out, `<p class="error">Error: Division by zero</p>`)
}

func TestHoroscopeResults(t *testing.T) {
	out := render(t, HoroscopeResults, &model.Horoscope{Name: "Sam", Sign: "leo", Personality: "Generous and warmhearted", LuckyNumber: 7})
	assert.Contains(t, out, "Sam, your sign is <strong>leo</strong>")
	assert.Contains(t, out, "Generous and warmhearted")
	assert.Contains(t, out, "<strong>7</strong>")

	out = render(t, HoroscopeResults, &model.Horoscope{Sign: "x", Personality: "Unknown sign", LuckyNumber: 1})
	assert.Contains(t, out, "Your sign is")
}

func TestErrorPage(t *testing.T) {
	out := render(t, Error, ErrorPage{Status: 404, Message: "page not found"})
	assert.Contains(t, out, "404: page not found")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "missing", nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

type failingData struct{}

func (failingData) Boom() (string, error) { return "", errors.New("boom") }

func TestRenderFailureWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html":     {Data: []byte(`{{define "base"}}<html>{{template "content" .}}</html>{{end}}`)},
		"templates/pages/bad.html": {Data: []byte(`{{define "title"}}{{end}}{{define "content"}}before {{.Boom}}{{end}}`)},
	}
	r, err := NewFromFS(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "bad", failingData{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewFromFSNoPages(t *testing.T) {
	_, err := NewFromFS(fstest.MapFS{
		"templates/layout.html": {Data: []byte(`{{define "base"}}{{end}}`)},
	})
	assert.Error(t, err)
}
