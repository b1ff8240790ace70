package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubSource returns fixed dynamic candidate lists.
type stubSource struct {
	clusters  []string
	templates []string
}

func (s *stubSource) Clusters() []string  { return s.clusters }
func (s *stubSource) Templates() []string { return s.templates }

func newTestDispatcher() *Dispatcher {
	return NewDispatcher("elasticluster", &stubSource{
		clusters:  []string{"mycluster", "gridengine", "myslurm"},
		templates: []string{"slurm", "gridengine", "slurm-on-gce"},
	})
}

func TestDispatcher_Subcommands(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Complete([]string{"elasticluster", ""}, 1)
	assert.Equal(t, Subcommands(), reply.Candidates)
	assert.Equal(t, DirectiveNoFileComp, reply.Directive)
}

func TestDispatcher_GlobalFlags(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Complete([]string{"elasticluster", "-"}, 1)
	assert.Equal(t, GlobalFlags(), reply.Candidates)

	reply = d.Complete([]string{"elasticluster", "--"}, 1)
	for _, c := range reply.Candidates {
		assert.Contains(t, c, "--")
	}
}

func TestDispatcher_ProgramWithPathPrefix(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Complete([]string{"/usr/local/bin/elasticluster", "st"}, 1)
	assert.Equal(t, []string{"start", "stop"}, reply.Candidates)
}

func TestDispatcher_PrefixFilterPreservesOrder(t *testing.T) {
	got := Filter([]string{"start", "stop", "setup"}, "st")
	assert.Equal(t, []string{"start", "stop"}, got)

	got = Filter([]string{"start", "stop", "setup"}, "")
	assert.Equal(t, []string{"start", "stop", "setup"}, got)

	got = Filter([]string{"start", "stop", "setup"}, "zzz")
	assert.Empty(t, got)
}

func TestDispatcher_TemplateSubcommands(t *testing.T) {
	d := newTestDispatcher()

	for _, prev := range []string{"start", "setup", "list-templates"} {
		reply := d.Complete([]string{"elasticluster", prev, ""}, 2)
		assert.Equal(t, []string{"slurm", "gridengine", "slurm-on-gce"}, reply.Candidates, "prev=%s", prev)
	}

	// Prefix narrows the dynamic list too.
	reply := d.Complete([]string{"elasticluster", "start", "slurm"}, 2)
	assert.Equal(t, []string{"slurm", "slurm-on-gce"}, reply.Candidates)
}

func TestDispatcher_ClusterSubcommands(t *testing.T) {
	d := newTestDispatcher()

	for _, prev := range []string{"stop", "resize", "list-nodes", "ssh", "sftp"} {
		reply := d.Complete([]string{"elasticluster", prev, ""}, 2)
		assert.Equal(t, []string{"mycluster", "gridengine", "myslurm"}, reply.Candidates, "prev=%s", prev)
	}

	reply := d.Complete([]string{"elasticluster", "ssh", "my"}, 2)
	assert.Equal(t, []string{"mycluster", "myslurm"}, reply.Candidates)
}

func TestDispatcher_DashAlwaysYieldsFlags(t *testing.T) {
	d := newTestDispatcher()

	// A current token starting with "-" never draws from dynamic lists.
	for prev, want := range map[string][]string{
		"start":  {"-h", "--help", "-v", "--verbose", "-n", "--name", "--nodes", "--no-setup"},
		"stop":   {"-h", "--help", "-v", "--verbose", "--force", "--wait"},
		"resize": {"-h", "--help", "-v", "--verbose", "-a", "--add", "-r", "--remove", "--no-setup"},
	} {
		reply := d.Complete([]string{"elasticluster", prev, "-"}, 2)
		assert.Equal(t, want, reply.Candidates, "prev=%s", prev)
		assert.NotContains(t, reply.Candidates, "mycluster")
		assert.NotContains(t, reply.Candidates, "slurm")
	}
}

func TestDispatcher_PathFlags(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Complete([]string{"elasticluster", "-c", ""}, 2)
	assert.Empty(t, reply.Candidates)
	assert.Equal(t, DirectiveDefault, reply.Directive)

	reply = d.Complete([]string{"elasticluster", "--config", ""}, 2)
	assert.Equal(t, DirectiveDefault, reply.Directive)

	reply = d.Complete([]string{"elasticluster", "-s", ""}, 2)
	assert.Equal(t, DirectiveFilterDirs, reply.Directive)

	reply = d.Complete([]string{"elasticluster", "--storage", ""}, 2)
	assert.Equal(t, DirectiveFilterDirs, reply.Directive)
}

func TestDispatcher_UnknownPrevious(t *testing.T) {
	d := newTestDispatcher()

	reply := d.Complete([]string{"elasticluster", "ssh", "mycluster", ""}, 3)
	assert.Empty(t, reply.Candidates)
	assert.Equal(t, DirectiveNoFileComp, reply.Directive)

	reply = d.Complete([]string{"elasticluster", "list", ""}, 2)
	assert.Empty(t, reply.Candidates)
}

func TestDispatcher_CwordBounds(t *testing.T) {
	d := newTestDispatcher()

	// Completing the program name itself: nothing to offer.
	reply := d.Complete([]string{"elasticluster"}, 0)
	assert.Empty(t, reply.Candidates)

	// cword just past the last word completes a fresh empty word.
	reply = d.Complete([]string{"elasticluster", "stop"}, 2)
	assert.Equal(t, []string{"mycluster", "gridengine", "myslurm"}, reply.Candidates)

	// Out-of-range cword degrades to nothing.
	reply = d.Complete([]string{"elasticluster"}, 5)
	assert.Empty(t, reply.Candidates)

	reply = d.Complete(nil, 0)
	assert.Empty(t, reply.Candidates)
}

func TestDispatcher_EmptySources(t *testing.T) {
	d := NewDispatcher("elasticluster", &stubSource{})

	reply := d.Complete([]string{"elasticluster", "stop", ""}, 2)
	assert.Empty(t, reply.Candidates)

	reply = d.Complete([]string{"elasticluster", "start", ""}, 2)
	assert.Empty(t, reply.Candidates)
}
