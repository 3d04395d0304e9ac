package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeAll(t, args...)
	return out, err
}

// executeAll runs the root command with args and returns stdout and stderr.
func executeAll(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// writeFixture writes the six-point sample file and its f32 ground truth.
func writeFixture(t *testing.T, dir string) (samples, truth string) {
	t.Helper()
	ds, err := dataset.New([]float32{
		0, 0, 0, 1, 1, 0,
		10, 10, 10, 11, 11, 10,
	}, 2)
	require.NoError(t, err)

	samples = filepath.Join(dir, "samples.data")
	require.NoError(t, dataset.EncodeFile(samples, ds))

	classes, err := dataset.New([]float32{0, 0, 0, 1, 1, 1}, 1)
	require.NoError(t, err)
	truth = filepath.Join(dir, "classes.data")
	require.NoError(t, dataset.EncodeFile(truth, classes))
	return samples, truth
}

func TestFitCmd(t *testing.T) {
	dir := t.TempDir()
	samples, truth := writeFixture(t, dir)
	labelsOut := filepath.Join(dir, "predicted.data")
	centroidsOut := filepath.Join(dir, "centroids.f32.zst")

	out, err := execute(t, "fit",
		"--samples", samples,
		"--nsamples", "6",
		"--nclusters", "2",
		"--seed", "1",
		"--labels-out", labelsOut,
		"--centroids-out", centroidsOut,
		"--truth", truth,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "nsamples=6 nfeatures=2 nclusters=2 max_iterations=1000")
	assert.Contains(t, out, "state=converged")
	assert.Contains(t, out, "predictions: [")
	assert.Contains(t, out, "matched_accuracy=1.0000")

	labels, err := dataset.ReadLabelsFile(labelsOut)
	require.NoError(t, err)
	require.Len(t, labels, 6)
	assert.Equal(t, labels[0], labels[2])
	assert.NotEqual(t, labels[0], labels[3])

	centroids, err := dataset.ReadFile(centroidsOut, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, centroids.Len())
}

func TestFitCmd_LogFields(t *testing.T) {
	dir := t.TempDir()
	samples, _ := writeFixture(t, dir)

	_, logs, err := executeAll(t, "fit",
		"--samples", samples,
		"--nsamples", "6",
		"--nclusters", "2",
		"--seed", "1",
		"--labels-out", filepath.Join(dir, "predicted.data"),
		"--log-format", "json",
	)
	require.NoError(t, err)

	assert.Contains(t, logs, `"msg":"fit completed"`)
	assert.Contains(t, logs, `"k":2`)
	assert.Contains(t, logs, `"dimension":2`)
	assert.Contains(t, logs, `"samples":6`)
}

func TestFitCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	samples, _ := writeFixture(t, dir)

	tests := []struct {
		name string
		args []string
	}{
		{"missing samples", []string{"fit", "--nsamples", "6"}},
		{"missing nsamples", []string{"fit", "--samples", samples}},
		{"shape mismatch", []string{"fit", "--samples", samples, "--nsamples", "7"}},
		{"too many clusters", []string{"fit", "--samples", samples, "--nsamples", "6", "--nclusters", "7"}},
		{"bad policy", []string{"fit", "--samples", samples, "--nsamples", "6", "--empty", "drop"}},
		{"bad scheme", []string{"fit", "--samples", "ftp://x/y", "--nsamples", "6"}},
		{"bad log level", []string{"fit", "--samples", samples, "--nsamples", "6", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "--labels-out", filepath.Join(dir, "l.data"))...)
			assert.Error(t, err)
		})
	}
}

func TestFitCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	samples, _ := writeFixture(t, dir)
	labelsOut := filepath.Join(dir, "labels.data")

	cfg := filepath.Join(dir, "fit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"samples: "+samples+"\n"+
			"nsamples: 6\n"+
			"nclusters: 5\n"+
			"max-iterations: 0\n"+
			"labels-out: "+labelsOut+"\n"), 0o600))

	// The flag overrides the file's nclusters.
	out, err := execute(t, "fit", "--config", cfg, "--nclusters", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "nclusters=2 max_iterations=0")
	assert.Contains(t, out, "state=iteration_limit_reached iterations=0")

	labels, err := dataset.ReadLabelsFile(labelsOut)
	require.NoError(t, err)
	assert.Equal(t, make([]int, 6), labels)
}

func TestFitCmd_ConfigUnknownKey(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("clusters: 3\n"), 0o600))

	_, err := execute(t, "fit", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestEvalCmd(t *testing.T) {
	dir := t.TempDir()
	_, truth := writeFixture(t, dir)

	predicted := filepath.Join(dir, "predicted.data")
	require.NoError(t, dataset.WriteLabelsFile(predicted, []int{1, 1, 1, 0, 0, 0}))

	out, err := execute(t, "eval", "--predicted", predicted, "--truth", truth)
	require.NoError(t, err)
	assert.Contains(t, out, "accuracy=0.0000 matched_accuracy=1.0000")

	truthU64 := filepath.Join(dir, "truth.u64")
	require.NoError(t, dataset.WriteLabelsFile(truthU64, []int{1, 1, 1, 0, 0, 1}))
	out, err = execute(t, "eval", "--predicted", predicted, "--truth", truthU64, "--truth-format", "u64")
	require.NoError(t, err)
	assert.Contains(t, out, "accuracy=0.8333")

	_, err = execute(t, "eval", "--predicted", predicted, "--truth", truth, "--truth-format", "csv")
	assert.Error(t, err)
}

func TestKernelsCmd(t *testing.T) {
	out, err := execute(t, "kernels")
	require.NoError(t, err)
	assert.Contains(t, out, "active:")
	assert.Contains(t, out, "available:")
}
