package intern_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/jsondoc-go/jsondoc/pkg/intern"
)

func TestRegistry_Metrics(t *testing.T) {
	r := intern.MustNew(intern.DefaultConfig(), nil)
	reg := prometheus.NewRegistry()
	require.NoError(t, r.RegisterMetrics(reg))
	defer r.UnregisterMetrics(reg)

	// Registering the same collectors again is tolerated.
	require.NoError(t, r.RegisterMetrics(reg))

	r.Intern("ab")
	r.Intern("cde")
	r.Intern("ab")

	expected := `
# HELP jsondoc_intern_hits_total Intern calls that found existing content.
# TYPE jsondoc_intern_hits_total counter
jsondoc_intern_hits_total 1
# HELP jsondoc_intern_key_bytes Total content bytes held for distinct keys.
# TYPE jsondoc_intern_key_bytes gauge
jsondoc_intern_key_bytes 5
# HELP jsondoc_intern_keys Number of distinct keys held by the registry.
# TYPE jsondoc_intern_keys gauge
jsondoc_intern_keys 2
# HELP jsondoc_intern_misses_total Intern calls that assigned a new handle.
# TYPE jsondoc_intern_misses_total counter
jsondoc_intern_misses_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"jsondoc_intern_keys", "jsondoc_intern_key_bytes",
		"jsondoc_intern_hits_total", "jsondoc_intern_misses_total"))
}

func TestRegistry_UnregisterMetrics(t *testing.T) {
	r := intern.MustNew(intern.DefaultConfig(), nil)
	reg := prometheus.NewRegistry()
	require.NoError(t, r.RegisterMetrics(reg))
	r.UnregisterMetrics(reg)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}
