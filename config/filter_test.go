package config_test

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/franciscoj/podium/config"
)

func filterContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("history", flag.PanicOnError)

	for _, name := range []string{"period", "start", "end"} {
		_ = f.String(name, "", "")
	}

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestFilterDefaultsToLastSevenDays(t *testing.T) {
	cfg, err := config.Filter(filterContext(t, nil))
	require.NoError(t, err)

	days := time.Since(cfg.StartTime).Hours() / 24
	assert.InDelta(t, 6, days, 1.1)
	assert.False(t, cfg.EndTime.Before(cfg.StartTime))
}

func TestFilterPeriod(t *testing.T) {
	cfg, err := config.Filter(filterContext(t, map[string]string{
		"period": "today",
	}))
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Day(), cfg.StartTime.Day())
	assert.Equal(t, 0, cfg.StartTime.Hour())
	assert.Equal(t, 23, cfg.EndTime.Hour())
}

func TestFilterAllTime(t *testing.T) {
	cfg, err := config.Filter(filterContext(t, map[string]string{
		"period": "all-time",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.StartTime.IsZero())
}

func TestFilterInvalidPeriod(t *testing.T) {
	_, err := config.Filter(filterContext(t, map[string]string{
		"period": "fortnight",
	}))
	assert.Error(t, err)
}

func TestFilterExplicitRange(t *testing.T) {
	cfg, err := config.Filter(filterContext(t, map[string]string{
		"start": "2024-03-01",
		"end":   "2024-03-15",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2024, cfg.StartTime.Year())
	assert.Equal(t, time.March, cfg.StartTime.Month())
	assert.Equal(t, 1, cfg.StartTime.Day())
	assert.Equal(t, 15, cfg.EndTime.Day())
}

func TestFilterRejectsInvertedRange(t *testing.T) {
	_, err := config.Filter(filterContext(t, map[string]string{
		"start": "2024-03-15",
		"end":   "2024-03-01",
	}))
	assert.Error(t, err)
}
