package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {

	testCases := []struct {
		name        string
		irreducible bool
		hasModulus  bool
		risk        RiskLevel
		verdict     Verdict
		reason      Reason
	}{
		{"reducible", false, true, RiskExcellent, VerdictReject, ReasonReducibleOverRationals},
		{"reducible overrides no modulus", false, false, RiskUnknown, VerdictReject, ReasonReducibleOverRationals},
		{"no modulus", true, false, RiskUnknown, VerdictIncomplete, ReasonNoModulusSupplied},
		{"oracle failure", true, true, RiskUnknown, VerdictIncomplete, ReasonFactorizationFailed},
		{"critical", true, true, RiskCritical, VerdictReject, ReasonLinearFactorModQ},
		{"high", true, true, RiskHigh, VerdictAcceptWithCaveats, ReasonSmallFactorModQ},
		{"moderate", true, true, RiskModerate, VerdictAcceptWithCaveats, ReasonModuleStructure},
		{"low", true, true, RiskLow, VerdictAccept, ReasonAcceptableFactorDegree},
		{"excellent", true, true, RiskExcellent, VerdictAccept, ReasonIrreducibleModQ},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict, reason := Recommend(tc.irreducible, tc.hasModulus, tc.risk)
			require.Equal(t, tc.verdict, verdict)
			require.Equal(t, tc.reason, reason)
		})
	}
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "ACCEPT", VerdictAccept.String())
	require.Equal(t, "ACCEPT_WITH_CAVEATS", VerdictAcceptWithCaveats.String())
	require.Equal(t, "REJECT", VerdictReject.String())
	require.Equal(t, "INCOMPLETE", VerdictIncomplete.String())
}
