package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRegistryContents(t *testing.T) {
	reg := Default()

	want := []string{
		"Alert", "AppCard", "AudioPlayer", "Card", "Collapse", "Form",
		"ImageGallery", "Markdown", "Modal", "Progress", "VideoPlayer",
		"WebView",
	}
	if diff := cmp.Diff(want, reg.Types()); diff != "" {
		t.Fatalf("Types() mismatch (-want +got):\n%s", diff)
	}
	if reg.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(want))
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	schema, ok := reg.Lookup("Card")
	if !ok {
		t.Fatal("Lookup(Card) not found")
	}
	if schema.Category != CategoryLayout {
		t.Errorf("Card category = %s, want %s", schema.Category, CategoryLayout)
	}
	if !schema.SupportsChildren || !schema.SupportsActions {
		t.Errorf("Card traits: children=%v actions=%v, want both true",
			schema.SupportsChildren, schema.SupportsActions)
	}

	if _, ok := reg.Lookup("Carousel"); ok {
		t.Error("Lookup(Carousel) found an unregistered type")
	}
	if reg.Has("Carousel") {
		t.Error("Has(Carousel) = true")
	}
}

func TestRequiredProps(t *testing.T) {
	reg := Default()

	appCard, _ := reg.Lookup("AppCard")
	if diff := cmp.Diff([]string{"id", "title"}, appCard.RequiredProps()); diff != "" {
		t.Errorf("AppCard required props mismatch (-want +got):\n%s", diff)
	}

	markdown, _ := reg.Lookup("Markdown")
	if got := markdown.RequiredProps(); len(got) != 0 {
		t.Errorf("Markdown required props = %v, want none", got)
	}
}

func TestRegister(t *testing.T) {
	reg := New()

	if err := reg.Register(Schema{Type: "  "}); err == nil {
		t.Fatal("Register with blank type should fail")
	}

	if err := reg.Register(Schema{Type: " Badge "}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	schema, ok := reg.Lookup("Badge")
	if !ok {
		t.Fatal("registered type not found after trimming")
	}
	if schema.Category != CategoryOther {
		t.Errorf("default category = %s, want %s", schema.Category, CategoryOther)
	}

	// latest registration wins
	if err := reg.Register(Schema{Type: "Badge", Category: CategoryDisplay}); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	schema, _ = reg.Lookup("Badge")
	if schema.Category != CategoryDisplay {
		t.Errorf("re-registered category = %s, want %s", schema.Category, CategoryDisplay)
	}
}

func TestTypesByCategory(t *testing.T) {
	reg := Default()
	got := reg.TypesByCategory(CategoryMedia)
	want := []string{"AudioPlayer", "ImageGallery", "VideoPlayer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TypesByCategory(media) mismatch (-want +got):\n%s", diff)
	}
}

func TestFallbackTable(t *testing.T) {
	cases := []struct {
		category Category
		want     string
	}{
		{CategoryDisplay, TypeMarkdown},
		{CategoryCard, TypeCard},
		{CategoryForm, TypeForm},
		{CategoryMedia, TypeCard},
		{CategoryFeedback, TypeCard},
		{CategoryLayout, TypeCard},
		{CategoryEmbed, TypeWebView},
		{CategoryOther, TypeCard},
		{Category("bogus"), TypeCard},
	}
	for _, tc := range cases {
		if got := FallbackForCategory(tc.category); got != tc.want {
			t.Errorf("FallbackForCategory(%s) = %s, want %s", tc.category, got, tc.want)
		}
	}
}

func TestRegistryFallback(t *testing.T) {
	reg := Default()
	if got := reg.Fallback("Collapse"); got != TypeMarkdown {
		t.Errorf("Fallback(Collapse) = %s, want %s", got, TypeMarkdown)
	}
	if got := reg.Fallback("NoSuchThing"); got != TypeCard {
		t.Errorf("Fallback(NoSuchThing) = %s, want %s", got, TypeCard)
	}
}

func TestClassifyUnknown(t *testing.T) {
	cases := []struct {
		name string
		want Category
	}{
		{"LoginForm", CategoryForm},
		{"FancyInput", CategoryForm},
		{"RichTextViewer", CategoryDisplay},
		{"MarkdownPlus", CategoryDisplay},
		{"TweetEmbed", CategoryEmbed},
		{"IFrameBox", CategoryEmbed},
		{"HeroPanel", CategoryLayout},
		{"SplitContainer", CategoryLayout},
		{"Sparkline", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := ClassifyUnknown(tc.name); got != tc.want {
			t.Errorf("ClassifyUnknown(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestFallbackForUnknown(t *testing.T) {
	if got := FallbackForUnknown("CustomSurvey"); got != TypeForm {
		t.Errorf("FallbackForUnknown(CustomSurvey) = %s, want %s", got, TypeForm)
	}
	if got := FallbackForUnknown("Blob"); got != TypeCard {
		t.Errorf("FallbackForUnknown(Blob) = %s, want %s", got, TypeCard)
	}
}

func TestValidFieldType(t *testing.T) {
	for _, ft := range FieldTypes() {
		if !ValidFieldType(ft) {
			t.Errorf("ValidFieldType(%s) = false", ft)
		}
	}
	if ValidFieldType("captcha") {
		t.Error("ValidFieldType(captcha) = true")
	}
}
