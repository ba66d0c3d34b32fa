package nexttag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	t.Run("Plain scope", func(t *testing.T) {
		scope, err := NewScope("", "", "")
		require.NoError(t, err)
		require.Equal(t, ScopeNone, scope.Kind)
		require.Empty(t, scope.Token)
	})

	t.Run("Prefix scope", func(t *testing.T) {
		scope, err := NewScope("dev", "", "")
		require.NoError(t, err)
		require.Equal(t, ScopePrefix, scope.Kind)
		require.Equal(t, "dev", scope.Token)
	})

	t.Run("Prefix with trailing dash", func(t *testing.T) {
		scope, err := NewScope("dev-", "", "")
		require.NoError(t, err)
		require.Equal(t, "dev", scope.Token)
	})

	t.Run("Suffix scope", func(t *testing.T) {
		scope, err := NewScope("", "rc", "")
		require.NoError(t, err)
		require.Equal(t, ScopeSuffix, scope.Kind)
		require.Equal(t, "rc", scope.Token)
	})

	t.Run("Suffix with leading dash", func(t *testing.T) {
		scope, err := NewScope("", "-rc", "")
		require.NoError(t, err)
		require.Equal(t, "rc", scope.Token)
	})

	t.Run("Module scope", func(t *testing.T) {
		scope, err := NewScope("", "", "api")
		require.NoError(t, err)
		require.Equal(t, ScopeModule, scope.Kind)
		require.Equal(t, "api", scope.Token)
	})

	t.Run("Conflicting scopes", func(t *testing.T) {
		combos := [][3]string{
			{"dev", "rc", ""},
			{"dev", "", "api"},
			{"", "rc", "api"},
			{"dev", "rc", "api"},
		}
		for _, combo := range combos {
			_, err := NewScope(combo[0], combo[1], combo[2])
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		}
	})

	t.Run("Reserved SNAPSHOT keyword", func(t *testing.T) {
		for _, token := range []string{"SNAPSHOT", "snapshot", "Snapshot"} {
			_, err := NewScope(token, "", "")
			require.Error(t, err, "prefix %s", token)

			_, err = NewScope("", token, "")
			require.Error(t, err, "suffix %s", token)
		}
	})

	t.Run("Suffix with separator", func(t *testing.T) {
		_, err := NewScope("", "release-candidate", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestValidateModuleName(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		names := []string{
			"api",
			"my_cli",
			"api.gateway",
			"test_api-v2",
			"x",
			"node-16",
		}
		for _, name := range names {
			require.NoError(t, ValidateModuleName(name), name)
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		names := []string{
			"",
			"-bad",
			"bad-",
			"_bad",
			"bad_",
			".bad",
			"bad.",
			"bad/name",
			"bad name",
			"bad@name",
			"bad--name",
			"bad__name",
			"bad..name",
		}
		for _, name := range names {
			err := ValidateModuleName(name)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, name)
		}
	})

	t.Run("Length limit", func(t *testing.T) {
		long := make([]byte, maxModuleNameLen+1)
		for i := range long {
			long[i] = 'a'
		}
		err := ValidateModuleName(string(long))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestScopeStrip(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
		tag   string
		want  string
		ok    bool
	}{
		{"plain passes through", Scope{}, "1.2.3", "1.2.3", true},
		{"prefix match", Scope{Kind: ScopePrefix, Token: "dev"}, "dev-1.2.3", "1.2.3", true},
		{"prefix mismatch", Scope{Kind: ScopePrefix, Token: "dev"}, "1.2.3", "", false},
		{"suffix match", Scope{Kind: ScopeSuffix, Token: "rc"}, "1.2.3-rc", "1.2.3", true},
		{"suffix mismatch", Scope{Kind: ScopeSuffix, Token: "rc"}, "rc-1.2.3", "", false},
		{"module match", Scope{Kind: ScopeModule, Token: "api"}, "api-2.0.0", "2.0.0", true},
		{"module with dashes", Scope{Kind: ScopeModule, Token: "my-node"}, "my-node-1.0.0", "1.0.0", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rest, ok := test.scope.Strip(test.tag)
			require.Equal(t, test.ok, ok)
			if ok {
				require.Equal(t, test.want, rest)
			}
		})
	}
}

func TestScopeDecorate(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{Scope{}, "1.2.3"},
		{Scope{Kind: ScopePrefix, Token: "dev"}, "dev-1.2.3"},
		{Scope{Kind: ScopeSuffix, Token: "rc"}, "1.2.3-rc"},
		{Scope{Kind: ScopeModule, Token: "api"}, "api-1.2.3"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			require.Equal(t, test.want, test.scope.Decorate("1.2.3"))
		})
	}
}
