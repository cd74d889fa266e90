// Package expiry defines the token lifetimes a user can pick and the two
// flavours of the create-token contract that carry them.
package expiry

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmp-tools/tokenpanel/internal/i18n"
)

// Token header names used by the two contract flavours.
const (
	HeaderDMP           = "X-DMP-TOKEN"
	HeaderAuthorization = "Authorization"
)

// PermanentHours is what a permanent token is recorded as server side.
const PermanentHours = 99 * 365 * 24

var ErrUnknownVariant = errors.New("unknown variant")

// Option is one selectable lifetime.
type Option struct {
	Name  string
	Hours int
}

// Label returns the localized display text of the option.
func (o Option) Label(lang i18n.Lang) string {
	return Labels.Get(lang, o.Name)
}

// Duration returns the lifetime, or zero for a permanent option.
func (o Option) Duration() time.Duration {
	return time.Duration(o.Hours) * time.Hour
}

// Variant fixes the header name, request field and option set of one
// flavour of the create-token contract.
type Variant struct {
	Name         string
	HeaderName   string
	RequestField string
	Options      []Option
}

var (
	DMP = Variant{
		Name:         "dmp",
		HeaderName:   HeaderDMP,
		RequestField: "expiration",
		Options: []Option{
			{Name: "day", Hours: 24},
			{Name: "week", Hours: 168},
			{Name: "month", Hours: 720},
			{Name: "year", Hours: 365 * 24},
			{Name: "permanent", Hours: 0},
		},
	}

	Legacy = Variant{
		Name:         "legacy",
		HeaderName:   HeaderAuthorization,
		RequestField: "expiredTime",
		Options: []Option{
			{Name: "day", Hours: 24},
			{Name: "month", Hours: 720},
			{Name: "year", Hours: 8760},
			{Name: "forever", Hours: 1752000},
		},
	}
)

// Default returns the variant used when none is configured.
func Default() Variant {
	return DMP
}

// Variants lists every known variant.
func Variants() []Variant {
	return []Variant{DMP, Legacy}
}

// Lookup resolves a variant by name. The empty name is the default.
func Lookup(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default(), nil
	}
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Contains reports whether hours is one of the variant's options.
func (v Variant) Contains(hours int) bool {
	_, ok := v.ByHours(hours)
	return ok
}

// ByHours returns the option with the given value.
func (v Variant) ByHours(hours int) (Option, bool) {
	for _, o := range v.Options {
		if o.Hours == hours {
			return o, true
		}
	}
	return Option{}, false
}

// ByName returns the option with the given name. "permanent" and
// "forever" are accepted for each other.
func (v Variant) ByName(name string) (Option, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, o := range v.Options {
		if o.Name == name {
			return o, true
		}
	}
	alias := map[string]string{"permanent": "forever", "forever": "permanent"}[name]
	if alias == "" {
		return Option{}, false
	}
	for _, o := range v.Options {
		if o.Name == alias {
			return o, true
		}
	}
	return Option{}, false
}

// Names lists the option names in display order.
func (v Variant) Names() []string {
	names := make([]string, 0, len(v.Options))
	for _, o := range v.Options {
		names = append(names, o.Name)
	}
	return names
}

// Payload is the create-token request body for the given lifetime.
func (v Variant) Payload(hours int) map[string]int {
	return map[string]int{v.RequestField: hours}
}

// Labels holds the display names of every option.
var Labels = i18n.NewMessages(
	map[string]string{
		"day":       "一天",
		"week":      "一周",
		"month":     "一月",
		"year":      "一年",
		"permanent": "永久",
		"forever":   "永久",
	},
	map[string]string{
		"day":       "One Day",
		"week":      "One Week",
		"month":     "One Month",
		"year":      "One Year",
		"permanent": "Permanent",
		"forever":   "Forever",
	},
)
