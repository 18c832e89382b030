package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// minimalFS returns the smallest dataset set that passes validation
func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		PracticeFile: {Data: []byte(`
name: Test Clinic
phone: "+15550000000"
booking_url: https://test.janeapp.com/
`)},
		ConditionsFile: {Data: []byte(`
- {name: Knee Pain, slug: knee-pain, category: Lower Body}
- {name: Runner's Knee, slug: runners-knee, category: Lower Body}
- {name: Sciatica, slug: sciatica, category: Spine}
`)},
		SymptomsFile: {Data: []byte(`
- title: Leg Pain
  symptoms: [pain down leg]
  condition: sciatica
  urgency: high
`)},
		BodyPartsFile:  {Data: []byte(`- {name: knee, conditions: [Knee Pain]}`)},
		ActivitiesFile: {Data: []byte(`- {name: Running, slug: running, keywords: [running]}`)},
		TreatmentsFile: {Data: []byte(`- {name: Dry Needling, slug: dry-needling, keywords: [needling]}`)},
		IntentsFile: {Data: []byte(`
emergency: {title: Call Now, kind: page, keywords: [emergency]}
booking: {title: Book, kind: service, keywords: [book]}
insurance: {title: Insurance, url: /faq, kind: faq, keywords: [insurance]}
location: {title: Location, url: /about, kind: page, keywords: [hours]}
`)},
	}
}

func TestDefault(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.NotNil(t, cat)

	assert.NotEmpty(t, cat.Conditions)
	assert.NotEmpty(t, cat.Symptoms)
	assert.NotEmpty(t, cat.BodyParts)
	assert.NotEmpty(t, cat.Activities)
	assert.NotEmpty(t, cat.Treatments)

	// Intent URLs default from the practice details
	assert.Equal(t, "tel:"+cat.Practice.Phone, cat.Intents.Emergency.URL)
	assert.Equal(t, cat.Practice.BookingURL, cat.Intents.Booking.URL)
	assert.Equal(t, types.ActionBooking, types.ClassifyURL(cat.Intents.Booking.URL))

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, cat, again, "Default should parse once")
}

func TestDefault_CrossReferencesResolve(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	for _, b := range cat.BodyParts {
		assert.NotEmpty(t, cat.ConditionsMatching(b.Conditions), "body part %s", b.Name)
	}
	for _, a := range cat.Activities {
		assert.NotEmpty(t, cat.ConditionsMatching(a.Conditions), "activity %s", a.Name)
	}
}

func TestLoad(t *testing.T) {
	cat, err := Load(context.Background(), minimalFS())
	require.NoError(t, err)

	assert.Equal(t, "Test Clinic", cat.Practice.Name)
	assert.Len(t, cat.Conditions, 3)
	assert.Equal(t, "tel:+15550000000", cat.Intents.Emergency.URL)
	assert.Equal(t, "https://test.janeapp.com/", cat.Intents.Booking.URL)
	assert.Equal(t, UrgencyHigh, cat.Symptoms[0].Urgency)

	cond, ok := cat.ConditionBySlug("sciatica")
	require.True(t, ok)
	assert.Equal(t, "/conditions/sciatica", cond.URL())

	_, ok = cat.ConditionBySlug("missing")
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m fstest.MapFS)
		wantErr error
	}{
		{
			name:   "missing file",
			mutate: func(m fstest.MapFS) { delete(m, TreatmentsFile) },
		},
		{
			name:   "malformed yaml",
			mutate: func(m fstest.MapFS) { m[ConditionsFile] = &fstest.MapFile{Data: []byte("- {name: [")} },
		},
		{
			name: "duplicate slug",
			mutate: func(m fstest.MapFS) {
				m[ConditionsFile] = &fstest.MapFile{Data: []byte(`
- {name: Knee Pain, slug: knee-pain}
- {name: Knee Ache, slug: knee-pain}
- {name: Sciatica, slug: sciatica}
`)}
			},
			wantErr: ErrDuplicateSlug,
		},
		{
			name: "unknown urgency",
			mutate: func(m fstest.MapFS) {
				m[SymptomsFile] = &fstest.MapFile{Data: []byte(`
- {title: Leg Pain, symptoms: [leg], condition: sciatica, urgency: critical}
`)}
			},
			wantErr: ErrUnknownUrgency,
		},
		{
			name: "dangling condition",
			mutate: func(m fstest.MapFS) {
				m[SymptomsFile] = &fstest.MapFile{Data: []byte(`
- {title: Leg Pain, symptoms: [leg], condition: gout, urgency: low}
`)}
			},
			wantErr: ErrUnknownCondition,
		},
		{
			name: "missing practice phone",
			mutate: func(m fstest.MapFS) {
				m[PracticeFile] = &fstest.MapFile{Data: []byte(`booking_url: https://x.janeapp.com/`)}
			},
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "intent with unknown kind",
			mutate: func(m fstest.MapFS) {
				m[IntentsFile] = &fstest.MapFile{Data: []byte(`
emergency: {title: Call Now, kind: page, keywords: [emergency]}
booking: {title: Book, kind: widget, keywords: [book]}
insurance: {title: Insurance, url: /faq, kind: faq, keywords: [insurance]}
location: {title: Location, url: /about, kind: page, keywords: [hours]}
`)}
			},
			wantErr: ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := minimalFS()
			tt.mutate(fsys)

			cat, err := Load(context.Background(), fsys)
			assert.Error(t, err)
			assert.Nil(t, cat)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, minimalFS())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for name, f := range minimalFS() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}

	cat, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, cat.Conditions, 3)

	_, err = LoadDir(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = LoadDir(context.Background(), filepath.Join(dir, PracticeFile))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestConditionsMatching(t *testing.T) {
	cat, err := Load(context.Background(), minimalFS())
	require.NoError(t, err)

	got := cat.ConditionsMatching([]string{"knee", "Knee Pain", "SCIATICA", ""})
	require.Len(t, got, 3)
	assert.Equal(t, "knee-pain", got[0].Slug)
	assert.Equal(t, "runners-knee", got[1].Slug)
	assert.Equal(t, "sciatica", got[2].Slug)

	// Mapped name longer than the real one still overlaps
	got = cat.ConditionsMatching([]string{"Acute Sciatica Flare"})
	require.Len(t, got, 1)
	assert.Equal(t, "sciatica", got[0].Slug)

	assert.Empty(t, cat.ConditionsMatching([]string{"Gout"}))
}

func TestUrgencyBaseScore(t *testing.T) {
	assert.Equal(t, 800.0, UrgencyEmergency.BaseScore())
	assert.Equal(t, 400.0, UrgencyHigh.BaseScore())
	assert.Equal(t, 300.0, UrgencyModerate.BaseScore())
	assert.Equal(t, 200.0, UrgencyLow.BaseScore())
	assert.Equal(t, 0.0, Urgency("critical").BaseScore())
	assert.False(t, Urgency("").Valid())
}
