package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalitmohan/portfolio/internal/portfolio"
)

func TestLoad_LiteralsAreValid(t *testing.T) {
	site, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Lalit Mohan", site.Portfolio.Personal.Name)
	assert.Len(t, site.Portfolio.Projects, 4)
	assert.Len(t, site.Portfolio.Skills, 4)
	assert.Len(t, site.Portfolio.Services, 3)
	assert.Len(t, site.Portfolio.Navigation, 4)
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first := MustLoad()
	first.Portfolio.Projects[0].Title = "changed"
	first.Portfolio.Projects[0].Tags[0] = "changed"
	first.Portfolio.Skills[0].Items[0] = "changed"
	first.Portfolio.Personal.SocialLinks[0].Label = "changed"
	first.Metadata.Keywords[0] = "changed"

	second := MustLoad()
	assert.Equal(t, "Neural Vision API", second.Portfolio.Projects[0].Title)
	assert.Equal(t, "Python", second.Portfolio.Projects[0].Tags[0])
	assert.Equal(t, "React", second.Portfolio.Skills[0].Items[0])
	assert.Equal(t, "GitHub", second.Portfolio.Personal.SocialLinks[0].Label)
	assert.Equal(t, "Full Stack Developer", second.Metadata.Keywords[0])
}

func TestLoad_Deterministic(t *testing.T) {
	if diff := cmp.Diff(MustLoad(), MustLoad()); diff != "" {
		t.Errorf("Load() not stable (-first +second):\n%s", diff)
	}
}

func TestNavigationTargetsSections(t *testing.T) {
	site := MustLoad()
	ids := make([]string, 0, len(site.Portfolio.Navigation))
	for _, item := range site.Portfolio.Navigation {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"work", "skills", "services", "contact"}, ids)
	assert.Equal(t, "#contact", site.NavCTA.Href)
}

func TestOptionalProjectLinks(t *testing.T) {
	site := MustLoad()
	sentix, ok := site.Portfolio.Project(3)
	require.True(t, ok)
	assert.True(t, sentix.HasSource())
	assert.False(t, sentix.HasDemo(), "Sentix NLP has no live demo")
}

func TestEmailLinkMatchesContactEmail(t *testing.T) {
	site := MustLoad()
	var found bool
	for _, link := range site.Portfolio.Personal.SocialLinks {
		if link.Platform == portfolio.PlatformEmail {
			found = true
			assert.Equal(t, site.Portfolio.Personal.MailTo(), link.URL)
		}
	}
	assert.True(t, found)
}

func TestSiteValidate_Errors(t *testing.T) {
	site := MustLoad()
	site.NavCTA.Href = "#nowhere"
	err := site.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	site = MustLoad()
	site.Brand.Initials = ""
	assert.ErrorIs(t, site.Validate(), ErrInvalid)

	site = MustLoad()
	site.Portfolio.Skills[0].Level = "Wizard"
	assert.ErrorIs(t, site.Validate(), ErrInvalid)
}
