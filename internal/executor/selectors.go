package executor

import (
	"strings"

	"uitp/internal/domain"
)

// accountTriggerSelectors are probed before a click chain to reveal login UI
// hidden behind account buttons, drawers or accordions.
var accountTriggerSelectors = []string{
	"button.account-button",
	".account-trigger",
	".icon-account",
	".header__icon--account",
	".user-icon",
	".account-icon",
}

// signInClickSelectors extend a click chain when the action describes a
// sign-in element. Ordered from most to least specific.
var signInClickSelectors = []string{
	"text=Sign in",
	"text=Log in",
	"[aria-label='Sign in']",
	"a.account-link",
	"#customer_login_link",
	"//a[contains(text(), 'Sign in')]",
	".header__action-item-link",
	".customer-login-link",
	"button.signin-button",
	".signin",
	".login-button",
	"#login-button",
}

// submitClickSelectors extend a click chain for form submission buttons.
var submitClickSelectors = []string{
	"button[type='submit']",
	"input[type='submit']",
	"#signin-button",
	"#customer_login_submit",
	".btn-signin",
}

// emailFillSelectors extend a fill chain for email fields.
var emailFillSelectors = []string{
	"input[type='email']",
	"input[name='email']",
	"input[id*='email' i]",
	"#CustomerEmail",
	"input.customer-email",
	"#email",
	"input.email",
	"[placeholder*='email' i]",
}

// passwordFillSelectors extend a fill chain for password fields.
var passwordFillSelectors = []string{
	"input[type='password']",
	"input[name='password']",
	"input[id*='password' i]",
	"#CustomerPassword",
	"#password",
	"input.password",
	"[placeholder*='password' i]",
}

// clickChain builds the ordered selector-fallback chain for a click action:
// the action's own selector first, then keyword-specialized fallbacks.
func clickChain(action domain.Action) []string {
	chain := []string{action.Selector}
	desc := strings.ToLower(action.Description)
	switch {
	case strings.Contains(desc, "sign in"):
		chain = append(chain, signInClickSelectors...)
	case strings.Contains(desc, "submit"):
		chain = append(chain, submitClickSelectors...)
	}
	return chain
}

// fillChain builds the ordered selector-fallback chain for a fill action.
func fillChain(action domain.Action) []string {
	chain := []string{action.Selector}
	desc := strings.ToLower(action.Description)
	switch {
	case strings.Contains(desc, "email"):
		chain = append(chain, emailFillSelectors...)
	case strings.Contains(desc, "password"):
		chain = append(chain, passwordFillSelectors...)
	}
	return chain
}
