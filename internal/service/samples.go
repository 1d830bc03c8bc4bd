package service

import "github.com/makemymate/makemymate-api/internal/dto"

// sampleCharacters seeds the gallery when no generated characters exist yet for a
// language, so the page is never empty. Counter values are fixed display numbers.
var sampleCharacters = map[string][]dto.CharacterResponse{
	"en": {
		{
			ShareID:               "sample1",
			CharacterName:         "Prince Lucian",
			CharacterDescription:  "A mysterious prince with piercing amber eyes and a troubled past. He's protective, possessive, and willing to burn the world for the one he loves.",
			CharacterTraits:       []string{"Mysterious", "Protective", "Possessive", "Dark Magic", "Royal Blood"},
			AppearanceDescription: "Dark hair, amber eyes, regal bearing",
			BackgroundStory:       "Born into a cursed royal family, Lucian learned to wield dark magic to protect his kingdom.",
			ImageURL:              "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Gothic Romance",
			ViewCount:             892,
			LikeCount:             156,
			ShareCount:            42,
			LanguageCode:          "en",
		},
		{
			ShareID:               "sample2",
			CharacterName:         "Lord Sebastian",
			CharacterDescription:  "A brooding nobleman with a heart of ice and a touch that burns. He's been hurt before, but you might be the one to melt his frozen heart.",
			CharacterTraits:       []string{"Brooding", "Noble", "Damaged", "Intense", "Mysterious"},
			AppearanceDescription: "Tall, dark, and dangerously handsome with stormy gray eyes",
			BackgroundStory:       "Once a celebrated war hero, Sebastian returned home to find his family destroyed by betrayal.",
			ImageURL:              "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Dark Romance",
			ViewCount:             756,
			LikeCount:             142,
			ShareCount:            38,
			LanguageCode:          "en",
		},
		{
			ShareID:               "sample3",
			CharacterName:         "Kael the Shadow",
			CharacterDescription:  "A rogue with a mysterious past and eyes that see into your soul. He's dangerous, unpredictable, and utterly irresistible.",
			CharacterTraits:       []string{"Rogue", "Mysterious", "Dangerous", "Charismatic", "Broken"},
			AppearanceDescription: "Lean and athletic with dark hair and piercing green eyes",
			BackgroundStory:       "A former assassin who found redemption in the most unlikely place - love.",
			ImageURL:              "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Mystic Realms",
			ViewCount:             634,
			LikeCount:             98,
			ShareCount:            29,
			LanguageCode:          "en",
		},
	},
	"de": {
		{
			ShareID:               "sample4",
			CharacterName:         "Prinz Lucian",
			CharacterDescription:  "Ein mysteriöser Prinz mit durchdringenden bernsteinfarbenen Augen und einer schwierigen Vergangenheit. Er ist beschützend, besitzergreifend und bereit, die Welt für die zu verbrennen, die er liebt.",
			CharacterTraits:       []string{"Mysteriös", "Beschützend", "Besitzergreifend", "Dunkle Magie", "Königliches Blut"},
			AppearanceDescription: "Dunkles Haar, bernsteinfarbene Augen, königliche Haltung",
			BackgroundStory:       "Geboren in eine verfluchte königliche Familie, lernte Lucian, dunkle Magie zu beherrschen, um sein Königreich zu schützen.",
			ImageURL:              "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Gothic Romance",
			ViewCount:             892,
			LikeCount:             156,
			ShareCount:            42,
			LanguageCode:          "de",
		},
		{
			ShareID:               "sample5",
			CharacterName:         "Lord Sebastian",
			CharacterDescription:  "Ein grüblerischer Adliger mit einem Herzen aus Eis und einer Berührung, die brennt. Er wurde schon einmal verletzt, aber du könntest diejenige sein, die sein gefrorenes Herz schmilzt.",
			CharacterTraits:       []string{"Grüblerisch", "Adlig", "Verletzt", "Intensiv", "Mysteriös"},
			AppearanceDescription: "Groß, dunkel und gefährlich gutaussehend mit stürmischen grauen Augen",
			BackgroundStory:       "Einst ein gefeierter Kriegsheld, kehrte Sebastian nach Hause zurück, um seine Familie durch Verrat zerstört zu finden.",
			ImageURL:              "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Dark Romance",
			ViewCount:             756,
			LikeCount:             142,
			ShareCount:            38,
			LanguageCode:          "de",
		},
		{
			ShareID:               "sample6",
			CharacterName:         "Kael der Schatten",
			CharacterDescription:  "Ein Schurke mit einer mysteriösen Vergangenheit und Augen, die in deine Seele blicken. Er ist gefährlich, unberechenbar und völlig unwiderstehlich.",
			CharacterTraits:       []string{"Schurke", "Mysteriös", "Gefährlich", "Charismatisch", "Gebrochen"},
			AppearanceDescription: "Schlank und athletisch mit dunklem Haar und durchdringenden grünen Augen",
			BackgroundStory:       "Ein ehemaliger Attentäter, der Erlösung an dem unwahrscheinlichsten Ort fand - in der Liebe.",
			ImageURL:              "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=600&fit=crop&crop=face",
			AestheticStyle:        "Mystic Realms",
			ViewCount:             634,
			LikeCount:             98,
			ShareCount:            29,
			LanguageCode:          "de",
		},
	},
}

// SampleCharacters returns up to limit seed characters for the given language,
// falling back to English for languages without their own set.
func SampleCharacters(languageCode string, limit int) []dto.CharacterResponse {
	samples, ok := sampleCharacters[languageCode]
	if !ok {
		samples = sampleCharacters["en"]
	}
	if limit > 0 && limit < len(samples) {
		samples = samples[:limit]
	}
	out := make([]dto.CharacterResponse, len(samples))
	copy(out, samples)
	return out
}
