package game

// SoundTag is the cue the presentation layer plays for a flavor event.
type SoundTag int

const (
	SoundStart SoundTag = iota
	SoundEat
	SoundBoost
	SoundDanger
	SoundDead
	SoundFortune

	SoundTagCount
)

// String returns the cue name.
func (s SoundTag) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundEat:
		return "eat"
	case SoundBoost:
		return "boost"
	case SoundDanger:
		return "danger"
	case SoundDead:
		return "dead"
	case SoundFortune:
		return "fortune"
	default:
		return "unknown"
	}
}

// Event is a transient flavor signal: a display line paired with a sound
// cue. Events are informational only; dropping them never affects the
// simulation.
type Event struct {
	Sound SoundTag
	Line  string
}

// Voice line pools. One is picked at random per event, through the
// engine's seeded RNG so runs stay reproducible.
var (
	startLines = []string{
		"Hadi bakalım!",
		"Sokak senin!",
		"Yeşil bekleme, başla!",
	}

	deathLines = []string{
		"Yandın usta...",
		"Kuyruğuna dikkat etmedin!",
		"Sokağın kanunu bu.",
		"Bir dahaki sefere kısmet.",
	}

	wallDeathLines = []string{
		"Duvara toslama!",
		"Burası çıkmaz sokak.",
	}

	redLightLines = []string{
		"Kırmızıda dur!",
		"Geç yok, bekle!",
	}

	greenLightLines = []string{
		"Yeşil yandı, bas gaza!",
		"Yol senin!",
	}

	charmLines = []string{
		"Nazar değmesin!",
		"Maşallah!",
	}

	teaOverdoseLines = []string{
		"Bu kadar çay fazla, mola!",
		"Çarpıntı geldi, otur biraz!",
	}

	fortuneLines = []string{
		"Fincanında uzun bir yol görünüyor...",
		"Kısmetinde simit var.",
		"Yakında büyük bir kuyruk bekliyor seni.",
		"Falında yeşil ışık çıktı.",
	}

	eatLines = map[FoodType][]string{
		FoodSimit:   {"Taze simit!", "Susamlısından!"},
		FoodDoner:   {"Dönerin hası!", "Yarım ekmek arası!"},
		FoodBaklava: {"Şerbetlisi ağır gider...", "Fıstıklı baklava!"},
		FoodCay:     {"Çay tavşan kanı!", "Bir çay daha!"},
		FoodAyran:   {"Ayran kapatır!", "Köpüklü ayran!"},
		FoodRaki:    {"Şerefe!", "Az su, çok muhabbet!"},
	}
)

// emit appends a flavor event, picking a random line from the pool.
func (e *Engine) emit(tag SoundTag, pool []string) {
	line := ""
	if len(pool) > 0 {
		line = pool[e.rng.Intn(len(pool))]
	}
	e.events = append(e.events, Event{Sound: tag, Line: line})
}
