package validation

import (
	"context"
	"net"
	"regexp"
	"strings"

	"clubhub-backend/internal/logger"
)

// Result is the transient outcome of a validation check. It is never
// persisted; a false Valid short-circuits the intake pipeline before any
// write happens.
type Result struct {
	Valid  bool
	Reason string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// Fixed reason strings returned by Validate.
const (
	ReasonInvalidFormat     = "invalid email format"
	ReasonDomainBlocked     = "email domain is not allowed"
	ReasonPrefixBlocked     = "email prefix is not allowed"
	ReasonSystemEmail       = "system email address is not allowed"
	ReasonNoMailServer      = "email domain has no mail server"
	ReasonDomainCheckFailed = "email domain could not be verified"
)

// The local part may not begin with '+', '-' or '=': a '+'-prefixed local
// part is a formula-injection vector once interpolated into spreadsheet
// exports. Those characters remain legal later in the local part.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%][A-Za-z0-9._%+\-=]*@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Disposable and placeholder domains rejected outright.
var blockedDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"dispostable.com":   {},
	"example.com":       {},
	"test.com":          {},
}

// Generic local parts that never belong to a real applicant.
var blockedPrefixes = map[string]struct{}{
	"test":     {},
	"admin":    {},
	"user":     {},
	"no-reply": {},
	"noreply":  {},
}

// MXLookupFunc resolves the mail exchangers for a domain. Injectable so
// tests never touch the network.
type MXLookupFunc func(ctx context.Context, domain string) ([]*net.MX, error)

// EmailValidator checks candidate addresses: format, blocklists, self-send
// prevention, then a deliverability probe via DNS MX lookup.
type EmailValidator struct {
	systemEmail string
	lookupMX    MXLookupFunc
}

func NewEmailValidator(systemEmail string, lookup MXLookupFunc) *EmailValidator {
	if lookup == nil {
		lookup = func(ctx context.Context, domain string) ([]*net.MX, error) {
			return net.DefaultResolver.LookupMX(ctx, domain)
		}
	}
	return &EmailValidator{
		systemEmail: strings.ToLower(systemEmail),
		lookupMX:    lookup,
	}
}

// Validate runs the checks in order, short-circuiting on the first failure.
// Only the final MX step performs network I/O.
func (v *EmailValidator) Validate(ctx context.Context, email string) Result {
	if !emailPattern.MatchString(email) {
		return invalid(ReasonInvalidFormat)
	}

	local, domainPart, _ := strings.Cut(email, "@")

	if _, blocked := blockedDomains[strings.ToLower(domainPart)]; blocked {
		return invalid(ReasonDomainBlocked)
	}
	if _, blocked := blockedPrefixes[strings.ToLower(local)]; blocked {
		return invalid(ReasonPrefixBlocked)
	}
	if v.systemEmail != "" && strings.ToLower(email) == v.systemEmail {
		return invalid(ReasonSystemEmail)
	}

	records, err := v.lookupMX(ctx, domainPart)
	if err != nil {
		// A resolver failure may be transient infrastructure trouble, not a
		// bad address. The caller still gets an invalid result, so keep the
		// distinction in the log for audit.
		logger.Warn("MX lookup failed", "domain", domainPart, "error", err)
		return invalid(ReasonDomainCheckFailed)
	}
	if len(records) == 0 {
		return invalid(ReasonNoMailServer)
	}

	return valid()
}
