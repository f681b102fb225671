// Package client provides value objects describing the order's owning client
// as seen by the order domain. Reputation is supplied by an external provider;
// this package only models the classification the delivery cost policy consumes.
package client

import (
	"fmt"

	"vinylshop/internal/pkg/errs"
)

// Reputation classifies the trust level of a client. It is consumed only as
// input to the delivery cost policy; how a client earns a tier is owned by the
// reputation provider, not by this domain.
type Reputation int

const (
	// UnknownReputation represents an invalid or undefined reputation.
	// This value (0) helps catch uninitialized Reputation values.
	UnknownReputation Reputation = iota

	// Standard is the default trust tier.
	Standard

	// VIP marks high-trust clients; delivery is waived for them.
	VIP
)

func getReputationStrings() map[Reputation]string {
	return map[Reputation]string{
		UnknownReputation: "Unknown",
		Standard:          "Standard",
		VIP:               "VIP",
	}
}

// ReputationFromString parses a reputation tier from its string form.
func ReputationFromString(s string) (Reputation, error) {
	for rep, str := range getReputationStrings() {
		if str == s && rep != UnknownReputation {
			return rep, nil
		}
	}
	return UnknownReputation, errs.NewValueIsInvalidErrorWithCause(
		"reputation is invalid",
		fmt.Errorf("%q is not a valid reputation tier", s),
	)
}

// Validate checks if the Reputation value is valid.
// Valid tiers are Standard and VIP; UnknownReputation is invalid.
func (r Reputation) Validate() error {
	if r != Standard && r != VIP {
		return errs.NewValueIsInvalidErrorWithCause(
			"reputation is invalid",
			fmt.Errorf("%d is not a valid reputation tier", r),
		)
	}
	return nil
}

// String returns the human-readable name of the reputation tier.
func (r Reputation) String() string {
	if str, ok := getReputationStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsVIP reports whether the client belongs to the high-trust tier.
func (r Reputation) IsVIP() bool {
	return r == VIP
}
