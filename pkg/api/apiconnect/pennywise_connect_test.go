package apiconnect

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rpcPattern = regexp.MustCompile(`(?m)^service (\w+) \{|^\s+rpc (\w+)\(`)

// protoProcedures lists "/pennywise.v1.<Service>/<Method>" for every rpc in
// the proto file.
func protoProcedures(t *testing.T) []string {
	t.Helper()
	src, err := os.ReadFile("../../../proto/pennywise/v1/pennywise.proto")
	require.NoError(t, err)

	var service string
	var procedures []string
	for _, m := range rpcPattern.FindAllStringSubmatch(string(src), -1) {
		if m[1] != "" {
			service = m[1]
			continue
		}
		procedures = append(procedures, "/pennywise.v1."+service+"/"+m[2])
	}
	return procedures
}

func TestProceduresMatchProto(t *testing.T) {
	want := []string{
		AuthServiceRegisterProcedure,
		AuthServiceLoginProcedure,
		AuthServiceGetCurrentUserProcedure,
		GroupServiceCreateGroupProcedure,
		GroupServiceListGroupsProcedure,
		GroupServiceGetGroupProcedure,
		GroupServiceUpdateGroupProcedure,
		GroupServiceDeleteGroupProcedure,
		GroupServiceListMembersProcedure,
		GroupServiceAddMemberProcedure,
		GroupServiceUpdateMemberProcedure,
		GroupServiceDeleteMemberProcedure,
		GroupServiceGetGroupBalancesProcedure,
		SplitServiceCreateSplitProcedure,
		SplitServiceListSplitsProcedure,
		SplitServiceGetSplitProcedure,
		SplitServiceListMemberSplitsProcedure,
		NotificationServiceListNotificationsProcedure,
		NotificationServiceMarkNotificationReadProcedure,
	}
	assert.Equal(t, want, protoProcedures(t))
}
