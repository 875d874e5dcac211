/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the naming, path and declaration helpers used
// by the Swift templates. Every helper is a method on Functions and is
// also exposed to text/template through FuncMap.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"bennypowers.dev/prism/kind"
	"bennypowers.dev/prism/synth"
	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

// SourcesRoot is the Swift package directory all generated paths live in.
const SourcesRoot = "Sources"

// ModuleName is the Swift module holding the default theme and the core
// protocols. Other themes live in ModuleName+ThemeName.
const ModuleName = "PrismTokens"

// Functions is the helper set available to templates.
type Functions struct{}

// FuncMap returns the helpers keyed by their template names.
func (f Functions) FuncMap() template.FuncMap {
	return template.FuncMap{
		"filterTokenPathForType":    f.FilterTokenPathForType,
		"themeTokens":               f.ThemeTokens,
		"providerProtocolForType":   f.ProviderProtocolForType,
		"providerForType":           f.ProviderForType,
		"friendlyNameForType":       f.FriendlyNameForType,
		"tokenProviderName":         f.TokenProviderName,
		"themeProviderName":         f.ThemeProviderName,
		"swiftProtocolVariable":     f.SwiftProtocolVariable,
		"swiftVariable":             f.SwiftVariable,
		"uniqueFontCombinations":    f.UniqueFontCombinations,
		"fontFamilies":              f.FontFamilies,
		"variableName":              f.VariableName,
		"backendKey":                f.BackendKey,
		"supportedTypes":            f.SupportedTypes,
		"normalizeChannel":          f.NormalizeChannel,
		"lightThemes":               f.LightThemes,
		"defaultTheme":              f.DefaultTheme,
		"filePathForThemeActivator": f.FilePathForThemeActivator,
		"filePathForThemeProvider":  f.FilePathForThemeProvider,
		"filePathForFonts":          f.FilePathForFonts,
		"filePathForTokenProvider":  f.FilePathForTokenProvider,
		"filePathForTokenProtocol":  f.FilePathForTokenProtocol,
		"providerClassDefinition":   f.ProviderClassDefinition,
		"packageImports":            f.PackageImports,
		"mergeDarkValues":           f.MergeDarkValues,
		"themeName":                 themeName,
		"activatorName":             f.ActivatorName,
		"fontsName":                 f.FontsName,
	}
}

// FilterTokenPathForType returns the tokens of kind k in input order.
func (Functions) FilterTokenPathForType(k kind.Kind, tokens []*token.Token) []*token.Token {
	return kind.Filter(k, tokens)
}

// ThemeTokens returns the tokens a theme carries.
func (Functions) ThemeTokens(t theme.Theme) []*token.Token {
	return t.Tokens
}

// FriendlyNameForType returns the kind name with its first letter upper
// or lower cased: borderRadius, BorderRadius.
func (Functions) FriendlyNameForType(k kind.Kind, upper bool) string {
	if upper {
		return token.UpperFirst(k.String())
	}
	return token.LowerFirst(k.String())
}

// TokenProviderName returns the provider type name for a kind. With an
// empty theme name this is the protocol; otherwise the theme's class.
func (f Functions) TokenProviderName(k kind.Kind, name string) string {
	return "Prism" + compact(name) + f.FriendlyNameForType(k, true) + "TokenProvider"
}

// ThemeProviderName returns the theme provider type for a theme name.
func (Functions) ThemeProviderName(name string) string {
	return "Prism" + compact(name) + "ThemeProvider"
}

// ActivatorName returns the activator type for a theme.
func (Functions) ActivatorName(t theme.Theme) string {
	return ModuleName + themeName(t) + "Activator"
}

// FontsName returns the font registry type for a theme.
func (Functions) FontsName(t theme.Theme) string {
	return "Prism" + themeName(t) + "Fonts"
}

// ProviderProtocolForType declares a theme provider's token provider
// requirement: var colorTokenProvider: PrismColorTokenProvider
func (f Functions) ProviderProtocolForType(k kind.Kind) string {
	return fmt.Sprintf("var %sTokenProvider: %s",
		f.FriendlyNameForType(k, false), f.TokenProviderName(k, ""))
}

// ProviderForType declares a theme's concrete token provider.
func (f Functions) ProviderForType(k kind.Kind, t theme.Theme) string {
	return fmt.Sprintf("let %sTokenProvider: %s = %s()",
		f.FriendlyNameForType(k, false), f.TokenProviderName(k, ""), f.TokenProviderName(k, themeName(t)))
}

// SwiftProtocolVariable declares a token as a protocol requirement.
func (Functions) SwiftProtocolVariable(tok *token.Token) (string, error) {
	typ, err := synth.SwiftType(tok.Type)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("var %s: %s", tok.VariableName(), typ), nil
}

// SwiftVariable declares a token's computed property for a theme. In the
// default theme the declaration carries a doc comment repeating the value.
func (Functions) SwiftVariable(tok *token.Token, t theme.Theme) (string, error) {
	typ, err := synth.SwiftType(tok.Type)
	if err != nil {
		return "", err
	}
	expr, err := synth.New(themeName(t)).Expression(tok)
	if err != nil {
		return "", err
	}
	name := tok.VariableName()
	decl := fmt.Sprintf("var %s: %s { %s }", name, typ, expr)
	if !t.IsDefault() {
		return decl, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "/// The default extension value for `%s`.\n", name)
	sb.WriteString("    ///\n")
	sb.WriteString("    /// This provides the value for the default theme and is overridden as needed in subsequent theme definitions.\n")
	sb.WriteString("    ///\n")
	fmt.Fprintf(&sb, "    /// The value is of type `%s` and is defined as:\n", typ)
	sb.WriteString("    /**\n")
	sb.WriteString("    ```swift\n")
	fmt.Fprintf(&sb, "    { %s }\n", expr)
	sb.WriteString("    ```\n")
	sb.WriteString("    */\n")
	sb.WriteString("    ")
	sb.WriteString(decl)
	return sb.String(), nil
}

// VariableName returns the token's Swift identifier.
func (Functions) VariableName(tok *token.Token) string {
	return tok.VariableName()
}

// BackendKey returns the token's backend key.
func (Functions) BackendKey(tok *token.Token) string {
	return tok.BackendKey()
}

// SupportedTypes returns the kind-to-category table.
func (Functions) SupportedTypes() []kind.Mapping {
	return kind.Supported()
}

// NormalizeChannel formats a 0..255 channel as a 0..1 decimal.
func (Functions) NormalizeChannel(v, decimals int) string {
	return synth.NormalizeChannel(v, decimals)
}

// LightThemes returns the non-dark themes with whitespace-free names,
// preceded by Default unless noDefault is set.
func (Functions) LightThemes(themes []theme.Theme, noDefault bool) []theme.Theme {
	return theme.Light(themes, noDefault)
}

// DefaultTheme returns the empty default theme.
func (Functions) DefaultTheme() theme.Theme {
	return theme.Theme{Name: theme.DefaultName}
}

// MergeDarkValues pairs tokens with their dark values. See theme.MergeDarkValues.
func (Functions) MergeDarkValues(defaults []*token.Token, themes []theme.Theme, includeInherited bool) ([]theme.Theme, error) {
	return theme.MergeDarkValues(defaults, themes, includeInherited)
}

// PackageImports returns the imports a theme module needs beyond UIKit.
func (Functions) PackageImports(t theme.Theme) string {
	if t.IsDefault() {
		return ""
	}
	return "import " + ModuleName + "\n"
}

// ProviderClassDefinition opens a theme's token provider declaration. The
// default theme's extension form extends the protocol instead.
func (f Functions) ProviderClassDefinition(k kind.Kind, t theme.Theme, isExtension bool) string {
	if t.IsDefault() && isExtension {
		return fmt.Sprintf("/// Extension providing the Default theme values for %s tokens.\npublic extension %s",
			f.FriendlyNameForType(k, true), f.TokenProviderName(k, ""))
	}
	return fmt.Sprintf("class %s: %s", f.TokenProviderName(k, themeName(t)), f.TokenProviderName(k, ""))
}

// themeName returns the whitespace-free name of t, Default when unnamed.
func themeName(t theme.Theme) string {
	if t.IsDefault() {
		return theme.DefaultName
	}
	return t.Compact().Name
}

func compact(name string) string {
	return theme.Theme{Name: name}.Compact().Name
}
