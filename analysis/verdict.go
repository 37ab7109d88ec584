package analysis

import "fmt"

// Verdict is the terminal accept/reject recommendation of one analysis.
type Verdict int

const (
	VerdictIncomplete Verdict = iota
	VerdictReject
	VerdictAcceptWithCaveats
	VerdictAccept
)

// String returns the human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictIncomplete:
		return "INCOMPLETE"
	case VerdictReject:
		return "REJECT"
	case VerdictAcceptWithCaveats:
		return "ACCEPT_WITH_CAVEATS"
	case VerdictAccept:
		return "ACCEPT"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Reason is a stable machine-readable code explaining a verdict.
type Reason string

const (
	ReasonReducibleOverRationals Reason = "reducible_over_rationals"
	ReasonNoModulusSupplied      Reason = "no_modulus_supplied"
	ReasonFactorizationFailed    Reason = "factorization_oracle_failed"
	ReasonIrreducibilityFailed   Reason = "irreducibility_oracle_failed"
	ReasonLinearFactorModQ       Reason = "linear_factor_mod_q"
	ReasonSmallFactorModQ        Reason = "small_factor_mod_q"
	ReasonModuleStructure        Reason = "module_structure_required"
	ReasonAcceptableFactorDegree Reason = "acceptable_factor_degree"
	ReasonIrreducibleModQ        Reason = "irreducible_mod_q"
	ReasonInvalidPolynomial      Reason = "invalid_polynomial"
	ReasonInvalidModulus         Reason = "invalid_modulus"
)

// Recommend combines the rational-irreducibility result with the risk level
// of the modular factorization into the final verdict. The decision table is
// evaluated first match wins; reducibility over the rationals is an
// absolute rejection that no risk level can override.
func Recommend(irreducible, hasModulus bool, risk RiskLevel) (Verdict, Reason) {

	switch {
	case !irreducible:
		return VerdictReject, ReasonReducibleOverRationals
	case !hasModulus:
		return VerdictIncomplete, ReasonNoModulusSupplied
	case risk == RiskUnknown:
		return VerdictIncomplete, ReasonFactorizationFailed
	case risk == RiskCritical:
		return VerdictReject, ReasonLinearFactorModQ
	case risk == RiskHigh:
		return VerdictAcceptWithCaveats, ReasonSmallFactorModQ
	case risk == RiskModerate:
		return VerdictAcceptWithCaveats, ReasonModuleStructure
	case risk == RiskLow:
		return VerdictAccept, ReasonAcceptableFactorDegree
	default:
		return VerdictAccept, ReasonIrreducibleModQ
	}
}
