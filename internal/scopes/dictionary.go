package scopes

import "golang.org/x/text/language"

// dictionaryTags lists the locales the compiled-in dictionary ships with. The
// first entry is the fallback for unsupported locales.
var dictionaryTags = []language.Tag{
	language.English,
	language.Spanish,
	language.Chinese,
}

// dictionary holds display text for well-known scopes when the store has no
// row for the requested (scope, locale) pair.
// DictionaryEntries returns every compiled-in (locale, scope) description.
// The seed tool loads these into the store so deployments can edit them.
func DictionaryEntries() map[language.Tag]map[string]Description {
	out := make(map[language.Tag]map[string]Description, len(dictionary))
	for tag, entries := range dictionary {
		perScope := make(map[string]Description, len(entries))
		for name, desc := range entries {
			perScope[name] = desc
		}
		out[tag] = perScope
	}
	return out
}

var dictionary = map[language.Tag]map[string]Description{
	language.English: {
		"openid":         {DisplayName: "Sign-in", Description: "Verify your identity"},
		"profile":        {DisplayName: "Profile", Description: "View your basic profile information"},
		"email":          {DisplayName: "Email address", Description: "View your email address"},
		"address":        {DisplayName: "Address", Description: "View your postal address"},
		"phone":          {DisplayName: "Phone number", Description: "View your phone number"},
		"offline_access": {DisplayName: "Offline access", Description: "Keep access when you are not signed in"},
	},
	language.Spanish: {
		"openid":         {DisplayName: "Inicio de sesión", Description: "Verificar tu identidad"},
		"profile":        {DisplayName: "Perfil", Description: "Ver tu información de perfil básica"},
		"email":          {DisplayName: "Correo electrónico", Description: "Ver tu dirección de correo electrónico"},
		"address":        {DisplayName: "Dirección", Description: "Ver tu dirección postal"},
		"phone":          {DisplayName: "Teléfono", Description: "Ver tu número de teléfono"},
		"offline_access": {DisplayName: "Acceso sin conexión", Description: "Mantener el acceso cuando no hayas iniciado sesión"},
	},
	language.Chinese: {
		"openid":         {DisplayName: "登录", Description: "验证您的身份"},
		"profile":        {DisplayName: "个人资料", Description: "查看您的基本个人资料"},
		"email":          {DisplayName: "电子邮箱", Description: "查看您的电子邮箱地址"},
		"address":        {DisplayName: "地址", Description: "查看您的邮寄地址"},
		"phone":          {DisplayName: "电话号码", Description: "查看您的电话号码"},
		"offline_access": {DisplayName: "离线访问", Description: "在您未登录时保持访问权限"},
	},
}
