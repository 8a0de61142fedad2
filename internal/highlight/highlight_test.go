package highlight

import "testing"

func TestApply_WrapsWholeWords(t *testing.T) {
	got := Apply("Acme Corp shall pay Acme Corp promptly.", []string{"Acme Corp"})
	want := `<span class="highlight">Acme Corp</span> shall pay <span class="highlight">Acme Corp</span> promptly.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApply_CaseSensitive(t *testing.T) {
	got := Apply("acme corp is not Acme Corp.", []string{"Acme Corp"})
	want := `acme corp is not <span class="highlight">Acme Corp</span>.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApply_WordBoundaryOnly(t *testing.T) {
	got := Apply("The subcontractor and the contractor signed.", []string{"contractor"})
	want := `The subcontractor and the <span class="highlight">contractor</span> signed.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApply_PunctuatedSurfaceMatchesLiterally(t *testing.T) {
	got := Apply("Payment through U.S. Bank only.", []string{"U.S. Bank"})
	want := `Payment through <span class="highlight">U.S. Bank</span> only.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// The dots are literal characters, not wildcards.
	if got := Apply("Payment through UxSx Bank only.", []string{"U.S. Bank"}); got != "Payment through UxSx Bank only." {
		t.Fatalf("dots matched as wildcards: %q", got)
	}
}

func TestApply_DollarSignSurfaceSurvives(t *testing.T) {
	got := Apply("Pay US$100 on signing.", []string{"US$100"})
	want := `Pay <span class="highlight">US$100</span> on signing.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApply_NonASCIISurfaces(t *testing.T) {
	got := Apply("Signed by José yesterday.", []string{"José"})
	want := `Signed by <span class="highlight">José</span> yesterday.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Apply("Supplier is Café Oy of Helsinki.", []string{"Café Oy"})
	want = `Supplier is <span class="highlight">Café Oy</span> of Helsinki.`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// Accented letters count as word runes, so a prefix inside a longer word
	// is not a whole-word occurrence.
	if got := Apply("Signed by Joséphine.", []string{"José"}); got != "Signed by Joséphine." {
		t.Fatalf("expected no highlight inside a longer word, got %q", got)
	}
}

func TestApply_BoundaryNeedsWordRuneOnOneSide(t *testing.T) {
	// A surface that starts with a non-word rune only has a leading boundary
	// when a word rune precedes it, so after a space it stays unwrapped.
	in := "Fee of $100 due at signing."
	if got := Apply(in, []string{"$100"}); got != in {
		t.Fatalf("expected no boundary between space and $, got %q", got)
	}
}

func TestApply_EmptySurfacesLeaveTextUnchanged(t *testing.T) {
	in := "Nothing to see here."
	if got := Apply(in, []string{"", "Absent"}); got != in {
		t.Fatalf("got %q, want unchanged input", got)
	}
}

func TestApply_SequentialSubstitutionOrder(t *testing.T) {
	// "Corp" occurring inside the first substitution's surface text is
	// rewritten again; sequential order in, sequential rewrites out.
	got := Apply("Acme Corp", []string{"Acme Corp", "Corp"})
	want := `<span class="highlight">Acme <span class="highlight">Corp</span></span>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
