// Package i18n localizes user-facing storefront messages. The shop serves
// customers in English, French and Arabic; admin and log output stays English.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // en, the fallback
	language.French,  // fr
	language.Arabic,  // ar
}

var matcher = language.NewMatcher(supported)

// messages maps message keys to per-language translations, indexed by the
// position of the language in supported.
var messages = map[string][3]string{
	"checkout.success": {
		"Order placed successfully",
		"Commande passée avec succès",
		"تم تقديم الطلب بنجاح",
	},
	"checkout.validation_failed": {
		"Name and phone are required",
		"Le nom et le téléphone sont obligatoires",
		"الاسم ورقم الهاتف مطلوبان",
	},
	"checkout.empty_cart": {
		"Your cart is empty",
		"Votre panier est vide",
		"سلة التسوق فارغة",
	},
	"checkout.failed": {
		"Could not place your order, please try again",
		"Impossible de passer votre commande, veuillez réessayer",
		"تعذر تقديم طلبك، يرجى المحاولة مرة أخرى",
	},
	"cart.product_not_found": {
		"This product is no longer available",
		"Ce produit n'est plus disponible",
		"هذا المنتج لم يعد متوفرا",
	},
}

// Locale is a resolved customer language
type Locale struct {
	tag   language.Tag
	index int
}

// Match resolves an Accept-Language header value to the best supported
// locale. Empty or unparseable values resolve to English.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Locale{tag: language.English, index: 0}
	}
	_, index, _ := matcher.Match(tags...)
	return Locale{tag: supported[index], index: index}
}

// Tag returns the locale's language tag
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Message returns the localized text for the given key. Unknown keys return
// the key itself so a missing translation is visible rather than silent.
func (l Locale) Message(key string) string {
	translations, ok := messages[key]
	if !ok {
		return key
	}
	return translations[l.index]
}
