package catalog

const imageBaseURL = "https://raw.githubusercontent.com/jamesmontemagno/app-monkeys/master/"

// DefaultMonkeys returns the built-in species collection in display order.
// Every call returns a fresh slice.
func DefaultMonkeys() []Monkey {
	return []Monkey{
		{
			Name:       "Baboon",
			Location:   "Africa & Asia",
			Details:    "Baboons are African and Arabian Old World monkeys belonging to the genus Papio, part of the subfamily Cercopithecinae.",
			Image:      imageBaseURL + "baboon.jpg",
			Population: IntPtr(10000),
			Latitude:   FloatPtr(-8.783195),
			Longitude:  FloatPtr(34.508523),
		},
		{
			Name:       "Capuchin Monkey",
			Location:   "Central & South America",
			Details:    "The capuchin monkeys are New World monkeys of the subfamily Cebinae. Prior to 2011, the subfamily contained only a single genus, Cebus.",
			Image:      imageBaseURL + "capuchin.jpg",
			Population: IntPtr(23000),
			Latitude:   FloatPtr(12.769013),
			Longitude:  FloatPtr(-85.602364),
		},
		{
			Name:       "Blue Monkey",
			Location:   "Central and East Africa",
			Details:    "The blue monkey or diademed monkey is a species of Old World monkey native to Central and East Africa, ranging from the upper Congo River basin east to the East African Rift and south to northern Angola and Zambia",
			Image:      imageBaseURL + "bluemonkey.jpg",
			Population: IntPtr(12000),
			Latitude:   FloatPtr(1.957709),
			Longitude:  FloatPtr(37.297204),
		},
		{
			Name:       "Squirrel Monkey",
			Location:   "Central & South America",
			Details:    "The squirrel monkeys are the New World monkeys of the genus Saimiri. They are the only genus in the subfamily Saimirinae. The name of the genus Saimiri is of Tupi origin, and was also used as an English name by early researchers.",
			Image:      imageBaseURL + "saimiri.jpg",
			Population: IntPtr(11000),
			Latitude:   FloatPtr(-8.783195),
			Longitude:  FloatPtr(-55.491477),
		},
		{
			Name:       "Golden Lion Tamarin",
			Location:   "Brazil",
			Details:    "The golden lion tamarin also known as the golden marmoset, is a small New World monkey of the family Callitrichidae.",
			Image:      imageBaseURL + "tamarin.jpg",
			Population: IntPtr(19000),
			Latitude:   FloatPtr(-14.235004),
			Longitude:  FloatPtr(-51.92528),
		},
		{
			Name:       "Howler Monkey",
			Location:   "South America",
			Details:    "Howler monkeys are among the largest of the New World monkeys. Fifteen species are currently recognised. Previously classified in the family Cebidae, they are now placed in the family Atelidae.",
			Image:      imageBaseURL + "alouatta.jpg",
			Population: IntPtr(8000),
			Latitude:   FloatPtr(-8.783195),
			Longitude:  FloatPtr(-55.491477),
		},
		{
			Name:       "Japanese Macaque",
			Location:   "Japan",
			Details:    "The Japanese macaque, is a terrestrial Old World monkey species native to Japan. They are also sometimes known as the snow monkey because they live in areas where snow covers the ground for months each",
			Image:      imageBaseURL + "macasa.jpg",
			Population: IntPtr(1000),
			Latitude:   FloatPtr(36.204824),
			Longitude:  FloatPtr(138.252924),
		},
		{
			Name:       "Mandrill",
			Location:   "Southern Cameroon, Gabon, and Congo",
			Details:    "The mandrill is a primate of the Old World monkey family, closely related to the baboons and even more closely to the drill. It is found in southern Cameroon, Gabon, Equatorial Guinea, and Congo.",
			Image:      imageBaseURL + "mandrill.jpg",
			Population: IntPtr(17000),
			Latitude:   FloatPtr(7.369722),
			Longitude:  FloatPtr(12.354722),
		},
		{
			Name:       "Proboscis Monkey",
			Location:   "Borneo",
			Details:    "The proboscis monkey or long-nosed monkey, known as the bekantan in Malay, is a reddish-brown arboreal Old World monkey that is endemic to the south-east Asian island of Borneo.",
			Image:      imageBaseURL + "borneo.jpg",
			Population: IntPtr(15000),
			Latitude:   FloatPtr(0.961883),
			Longitude:  FloatPtr(114.55485),
		},
		{
			Name:       "Sebastian",
			Location:   "Seattle",
			Details:    "This little trouble maker lives in Seattle with James and loves traveling on adventures with James and tweeting @MotzMonkeys. He by far is an Android fanboy and is getting ready for the new Google Pixel 9!",
			Image:      imageBaseURL + "sebastian.jpg",
			Population: IntPtr(1),
			Latitude:   FloatPtr(47.606209),
			Longitude:  FloatPtr(-122.332071),
		},
		{
			Name:       "Henry",
			Location:   "Phoenix",
			Details:    "An adorable Monkey who is traveling the world with Heather and live tweets his adventures @MotzMonkeys. His favorite platform is iOS by far and is excited for the new iPhone Xs!",
			Image:      imageBaseURL + "henry.jpg",
			Population: IntPtr(1),
			Latitude:   FloatPtr(33.448377),
			Longitude:  FloatPtr(-112.074037),
		},
		{
			Name:       "Red-shanked douc",
			Location:   "Vietnam",
			Details:    "The red-shanked douc is a species of Old World monkey, among the most colourful of all primates. The douc is an arboreal and diurnal monkey that eats and sleeps in the trees of the forest.",
			Image:      imageBaseURL + "douc.jpg",
			Population: IntPtr(1300),
			Latitude:   FloatPtr(16.111648),
			Longitude:  FloatPtr(108.262122),
		},
		{
			Name:       "Mooch",
			Location:   "Seattle",
			Details:    "An adorable Monkey who is traveling the world with Heather and live tweets his adventures @MotzMonkeys. Her favorite platform is iOS by far and is excited for the new iPhone 16!",
			Image:      imageBaseURL + "Mooch.PNG",
			Population: IntPtr(1),
			Latitude:   FloatPtr(47.608013),
			Longitude:  FloatPtr(-122.335167),
		},
	}
}
