package chrome

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

func TestInnerTextScript(t *testing.T) {
	got := innerTextScript("_css-jsRibq")
	require.Equal(t, `Array.from(document.getElementsByClassName("_css-jsRibq")).map(e => e.innerText)`, got)
}

func TestAllocatorOptions_Profile(t *testing.T) {
	base := len(chromedp.DefaultExecAllocatorOptions)

	plain := New(Config{Headless: true}, logger.Discard()).allocatorOptions()
	full := New(Config{
		Headless:         true,
		ExecPath:         "/usr/bin/chromium",
		UserDataDir:      t.TempDir(),
		ProfileDirectory: "Default",
		UserAgent:        strings.Repeat("x", 3),
	}, logger.Discard()).allocatorOptions()

	require.Len(t, plain, base+3)
	require.Len(t, full, base+7)
}

func TestLockProfile_WithoutProfileNeverBlocks(t *testing.T) {
	r := New(Config{}, logger.Discard())

	first, err := r.lockProfile(context.Background())
	require.NoError(t, err)
	second, err := r.lockProfile(context.Background())
	require.NoError(t, err)

	first()
	second()
}

func TestLockProfile_SerializesSessions(t *testing.T) {
	r := New(Config{UserDataDir: t.TempDir()}, logger.Discard())

	release, err := r.lockProfile(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = r.lockProfile(ctx)
	require.ErrorIs(t, err, types.ErrRenderFailed)

	release()
	release()

	again, err := r.lockProfile(context.Background())
	require.NoError(t, err)
	again()
}
