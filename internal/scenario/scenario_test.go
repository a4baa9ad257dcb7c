package scenario

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/reactornav/internal/navigation"
)

func opStrings(ops []Op) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = o.String()
	}
	return out
}

func play(t *testing.T, src string) *Runner {
	t.Helper()
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	r, err := Play(f, nil)
	require.NoError(t, err)
	return r
}

func TestPushThenPop(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
tag = "nav"
stack = ["A"]

[[steps]]
event = "push"
target = "nav"
view = "B"

[[steps]]
event = "pop"
target = "nav"
`)
	want := []string{"nav: push A", "nav: push B", "nav: pop-to A"}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"A"}, r.Root().(navigation.NavigationState).StackIDs())
}

func TestChangeTab(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
kind = "tabs"
tag = "root"
selected = 0

[[root.tabs]]
tag = "one"
title = "One"
stack = ["a"]

[[root.tabs]]
tag = "two"
title = "Two"
stack = ["b"]

[[steps]]
event = "change_tab"
target = "root"
index = 1
`)
	want := []string{
		"one: push a",
		"two: push b",
		"root: set-slots [one two]",
		"root: select 1",
	}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, r.Root().(navigation.TabsState).SelectedIndex)
}

func TestModalRequestsDuringAnimationAreDropped(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
tag = "nav"
stack = ["A"]

[[steps]]
event = "present"
target = "nav"
[steps.modal]
tag = "M"
stack = ["m"]

[[steps]]
event = "present"
target = "nav"
[steps.modal]
tag = "M2"
stack = ["m2"]
`)
	want := []string{"nav: push A", "M: push m", "nav: present M"}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, r.Pending())

	// the resync after completion swaps in M2: dismiss first, present once
	// the dismissal finishes
	r.Complete()
	want = append(want, "M2: push m2", "nav: dismiss M")
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, r.Pending())

	r.Complete()
	want = append(want, "nav: present M2")
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, r.Pending())
}

func TestNativeBackAndTap(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
kind = "tabs"
tag = "root"

[[root.tabs]]
tag = "one"
stack = ["a"]

[[root.tabs]]
tag = "two"
stack = ["c"]

[[steps]]
event = "push"
target = "one"
view = "b"

[[steps]]
event = "back"
target = "one"

[[steps]]
event = "tap_tab"
target = "root"
index = 1
`)
	want := []string{
		"one: push a",
		"two: push c",
		"root: set-slots [one two]",
		"one: push b",
		"one: native-pop b",
		"root: select 1",
	}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	tabs := r.Root().(navigation.TabsState)
	require.Equal(t, []string{"a"}, tabs.Tabs[0].Navigation.StackIDs())
	require.Equal(t, 1, tabs.SelectedIndex)
}

func TestHiddenTabReceivesEvents(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
kind = "tabs"
tag = "root"

[[root.tabs]]
tag = "one"
stack = ["a"]

[[root.tabs]]
tag = "two"
hidden = true
stack = ["c"]

[[steps]]
event = "push"
target = "two"
view = "d"

[[steps]]
event = "change_tab"
target = "root"
index = 1

[[steps]]
event = "set_hidden"
target = "root"
index = 1
hidden = false
`)
	want := []string{
		"one: push a",
		"root: set-slots [one]",
		"two: push c",
		"two: push d",
		"root: set-slots [one two]",
		"root: select 1",
	}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	tabs := r.Root().(navigation.TabsState)
	require.Equal(t, []string{"c", "d"}, tabs.Tabs[1].Navigation.StackIDs())
}

func TestUnhiddenTabKeepsItsStack(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
kind = "tabs"
tag = "root"

[[root.tabs]]
tag = "t0"
stack = ["a"]

[[root.tabs]]
tag = "t1"
stack = ["x"]

[[steps]]
event = "push"
target = "t1"
view = "y"

[[steps]]
event = "set_hidden"
target = "root"
index = 1
hidden = true

[[steps]]
event = "set_hidden"
target = "root"
index = 1
hidden = false

[[steps]]
event = "back"
target = "t1"
`)
	want := []string{
		"t0: push a",
		"t1: push x",
		"root: set-slots [t0 t1]",
		"t1: push y",
		"root: set-slots [t0]",
		"t1: push x",
		"t1: push y",
		"root: set-slots [t0 t1]",
		"t1: native-pop y",
	}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	tabs := r.Root().(navigation.TabsState)
	require.Equal(t, []string{"x"}, tabs.Tabs[1].Navigation.StackIDs())
}

func TestModalWithDeepStackIsBuiltWhole(t *testing.T) {
	t.Parallel()

	r := play(t, `
[root]
tag = "nav"
stack = ["A"]

[[steps]]
event = "present"
target = "nav"
[steps.modal]
tag = "M"
stack = ["m1", "m2"]

[[steps]]
event = "complete"

[[steps]]
event = "back"
target = "M"
`)
	want := []string{
		"nav: push A",
		"M: push m1",
		"M: push m2",
		"nav: present M",
		"M: native-pop m2",
	}
	if diff := cmp.Diff(want, opStrings(r.Ops())); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
	modal := r.Root().(navigation.NavigationState).Modal.(navigation.NavigationState)
	require.Equal(t, []string{"m1"}, modal.StackIDs())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for name, src := range map[string]string{
		"empty stack":   "[root]\ntag = \"nav\"\n",
		"no tag":        "[root]\nstack = [\"a\"]\n",
		"bad kind":      "[root]\nkind = \"grid\"\ntag = \"x\"\nstack = [\"a\"]\n",
		"unknown event": "[root]\ntag = \"nav\"\nstack = [\"a\"]\n[[steps]]\nevent = \"jump\"\ntarget = \"nav\"\n",
		"no target":     "[root]\ntag = \"nav\"\nstack = [\"a\"]\n[[steps]]\nevent = \"pop\"\n",
		"unknown key":   "[root]\ntag = \"nav\"\nstack = [\"a\"]\ncolour = \"red\"\n",
		"push no view":  "[root]\ntag = \"nav\"\nstack = [\"a\"]\n[[steps]]\nevent = \"push\"\ntarget = \"nav\"\n",
	} {
		_, err := Parse([]byte(src))
		require.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestBackOnUnknownContainer(t *testing.T) {
	t.Parallel()

	r := NewRunner(navigation.NewNavigation(navigation.NamedTag("nav"), View("a")), nil)
	require.ErrorIs(t, r.Back("other"), ErrInvalid)
	require.ErrorIs(t, r.TapTab("nav", 0), ErrInvalid)
}

func TestTestdataScenarios(t *testing.T) {
	t.Parallel()

	want := map[string][]string{
		"push_pop.toml": {"main: push A", "main: push B", "main: pop-to A"},
		"change_tab.toml": {
			"first: push a",
			"second: push b",
			"root: set-slots [first second]",
			"root: select 1",
		},
		"modal_swap.toml": {
			"main: push A",
			"M: push m",
			"main: present M",
			"M2: push m2",
			"main: dismiss M",
			"main: present M2",
		},
	}
	for name, ops := range want {
		f, err := Load(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		r, err := Play(f, nil)
		require.NoError(t, err, name)
		if diff := cmp.Diff(ops, opStrings(r.Ops())); diff != "" {
			t.Errorf("%s ops mismatch (-want +got):\n%s", name, diff)
		}
		require.Zero(t, r.Pending(), name)
	}
}
