package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type screen string

func (s screen) UniqueID() string { return string(s) }

type (
	rootTabs   struct{}
	browseNav  struct{}
	savedNav   struct{}
	aboutModal struct{}
)

var (
	rootTag   = TagFor[rootTabs]()
	browseTag = TagFor[browseNav]()
	savedTag  = TagFor[savedNav]()
	aboutTag  = TagFor[aboutModal]()
)

func sampleTree() TabsState {
	return TabsState{
		Tag:           rootTag,
		SelectedIndex: 0,
		Tabs: []TabState{
			{Navigation: NewNavigation(browseTag, screen("home")), Title: "Browse"},
			{Navigation: NewNavigation(savedTag, screen("saved")), Title: "Saved", Hidden: true},
		},
	}
}

func TestPopKeepsStackFloor(t *testing.T) {
	t.Parallel()

	s := NewNavigation(browseTag, screen("home"))
	got := ReduceNavigation(s, PopView{Container: browseTag})
	require.Equal(t, []string{"home"}, got.StackIDs())
}

func TestPushPopRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []NavigationState{
		NewNavigation(browseTag, screen("a")),
		NewNavigation(browseTag, screen("a"), screen("b"), screen("c")),
	} {
		pushed := ReduceNavigation(s, PushView{Container: browseTag, View: screen("z")})
		require.Equal(t, len(s.Stack)+1, len(pushed.Stack))
		popped := ReduceNavigation(pushed, PopView{Container: browseTag})
		require.Equal(t, s.StackIDs(), popped.StackIDs())
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := NewNavigation(browseTag, screen("a"), screen("b"))
	popped := ReduceNavigation(s, PopView{Container: browseTag})
	_ = ReduceNavigation(popped, PushView{Container: browseTag, View: screen("c")})
	require.Equal(t, []string{"a", "b"}, s.StackIDs())
	require.Equal(t, []string{"a"}, popped.StackIDs())
}

func TestNonNavigationEventPassesThrough(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	got := Reduce(tree, struct{ Name string }{"unrelated"})
	require.Equal(t, tree, got)
}

func TestRoutingLocality(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	got := Reduce(tree, PushView{Container: browseTag, View: screen("detail")}).(TabsState)

	require.Equal(t, []string{"home", "detail"}, got.Tabs[0].Navigation.StackIDs())
	require.Equal(t, []string{"saved"}, got.Tabs[1].Navigation.StackIDs())
	require.Equal(t, tree.SelectedIndex, got.SelectedIndex)
	require.Nil(t, got.Modal)
	// the input tree is untouched
	require.Equal(t, []string{"home"}, tree.Tabs[0].Navigation.StackIDs())
}

func TestEventsReachHiddenTabs(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	got := Reduce(tree, PushView{Container: savedTag, View: screen("item")}).(TabsState)
	require.True(t, got.Tabs[1].Hidden)
	require.Equal(t, []string{"saved", "item"}, got.Tabs[1].Navigation.StackIDs())
}

func TestTabContainerIgnoresStackEvents(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	got := Reduce(tree, PushView{Container: rootTag, View: screen("x")})
	require.Equal(t, tree, got)
}

func TestChangeTabIsNotValidated(t *testing.T) {
	t.Parallel()

	got := Reduce(sampleTree(), ChangeTab{Container: rootTag, Index: 7}).(TabsState)
	require.Equal(t, 7, got.SelectedIndex)
}

func TestModalPresentReplaceDismiss(t *testing.T) {
	t.Parallel()

	modal := NewNavigation(aboutTag, screen("about"))
	tree := Reduce(sampleTree(), PresentModal{Container: browseTag, Modal: modal}).(TabsState)
	require.NotNil(t, tree.Tabs[0].Navigation.Modal)
	require.Nil(t, tree.Modal)

	other := NewNavigation(NamedTag("other"), screen("x"))
	tree = Reduce(tree, PresentModal{Container: browseTag, Modal: other}).(TabsState)
	require.Equal(t, "other", tree.Tabs[0].Navigation.Modal.ContainerTag().UniqueID())

	tree = Reduce(tree, DismissModal{Container: browseTag}).(TabsState)
	require.Nil(t, tree.Tabs[0].Navigation.Modal)
}

func TestEventsRouteIntoModals(t *testing.T) {
	t.Parallel()

	modal := NewNavigation(aboutTag, screen("about"))
	tree := Reduce(sampleTree(), PresentModal{Container: rootTag, Modal: modal})
	tree = Reduce(tree, PushView{Container: aboutTag, View: screen("licenses")})

	got, ok := FindSubstate(tree, aboutTag)
	require.True(t, ok)
	require.Equal(t, []string{"about", "licenses"}, got.(NavigationState).StackIDs())

	tree = Reduce(tree, PopView{Container: aboutTag})
	got, _ = FindSubstate(tree, aboutTag)
	require.Equal(t, []string{"about"}, got.(NavigationState).StackIDs())
}

func TestSetTabHidden(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	got := Reduce(tree, SetTabHidden{Container: rootTag, Index: 1, Hidden: false}).(TabsState)
	require.False(t, got.Tabs[1].Hidden)
	require.True(t, tree.Tabs[1].Hidden)

	same := Reduce(tree, SetTabHidden{Container: rootTag, Index: 5, Hidden: false})
	require.Equal(t, tree, same)
}

func TestTabEquality(t *testing.T) {
	t.Parallel()

	a := TabState{Navigation: NewNavigation(browseTag, screen("home")), Title: "Browse"}
	b := TabState{Navigation: NewNavigation(browseTag, screen("home"), screen("deep")), Title: "Renamed"}
	require.True(t, a.Equal(b))

	b.Hidden = true
	require.False(t, a.Equal(b))

	c := TabState{Navigation: NewNavigation(savedTag, screen("home"))}
	require.False(t, a.Equal(c))
	require.False(t, TabsEqual([]TabState{a}, []TabState{a, c}))
}
