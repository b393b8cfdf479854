package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/issue-import/internal/app"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/testutil"
)

// testEnv bundles a container built from mocks with its doubles.
type testEnv struct {
	container   *app.Container
	loader      *testutil.MockConfigLoader
	credentials *testutil.MockCredentialStore
	repos       *testutil.MockRepoDetector
	reports     *testutil.MockReportWriter
	source      *testutil.MockIssueSource
	destination *testutil.MockStoryDestination
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	settings := domain.NewDefaultSettings()
	env := &testEnv{
		loader:      &testutil.MockConfigLoader{Settings: settings},
		credentials: testutil.NewMockCredentialStore(),
		repos:       &testutil.MockRepoDetector{},
		reports:     &testutil.MockReportWriter{},
		source:      &testutil.MockIssueSource{},
		destination: &testutil.MockStoryDestination{},
	}
	env.container = app.NewWithDeps(app.Config{Dir: t.TempDir()}, app.Deps{
		ConfigLoader: env.loader,
		Credentials:  env.credentials,
		Repos:        env.repos,
		Reports:      env.reports,
		Source:       env.source,
		Destination:  env.destination,
	})
	return env
}

// execute runs the root command with args and returns stdout and stderr.
func (e *testEnv) execute(args ...string) (string, string, error) {
	root := NewRootCommand(e.container, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
