package catalog

// The demo catalog. IDs are stable; the order here is the display order.
var books = []Product{
	{
		ID:          "1",
		Title:       "The Midnight Library",
		Author:      "Matt Haig",
		Price:       16.99,
		CoverURL:    "https://picsum.photos/id/24/300/450",
		Description: "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
		Category:    "Fiction",
		Rating:      4.8,
		Bestseller:  true,
	},
	{
		ID:          "2",
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Price:       14.99,
		CoverURL:    "https://picsum.photos/id/20/300/450",
		Description: "No matter your goals, Atomic Habits offers a proven framework for improving--every day.",
		Category:    "Non-Fiction",
		Rating:      4.9,
		Bestseller:  true,
	},
	{
		ID:          "3",
		Title:       "Project Hail Mary",
		Author:      "Andy Weir",
		Price:       18.99,
		CoverURL:    "https://picsum.photos/id/1015/300/450",
		Description: "Ryland Grace is the sole survivor on a desperate, last-chance mission, and if he fails, humanity and the earth itself will perish.",
		Category:    "Sci-Fi",
		Rating:      4.9,
		Bestseller:  true,
	},
	{
		ID:          "4",
		Title:       "Tomorrow, and Tomorrow, and Tomorrow",
		Author:      "Gabrielle Zevin",
		Price:       15.99,
		CoverURL:    "https://picsum.photos/id/1060/300/450",
		Description: "A modern classic about video games, love, and the complexity of human connection.",
		Category:    "Fiction",
		Rating:      4.5,
	},
	{
		ID:          "5",
		Title:       "Sapiens: A Brief History of Humankind",
		Author:      "Yuval Noah Harari",
		Price:       12.99,
		CoverURL:    "https://picsum.photos/id/1050/300/450",
		Description: "Explore the history of our species from the Stone Age to the Silicon Age.",
		Category:    "History",
		Rating:      4.7,
	},
	{
		ID:          "6",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Price:       20.00,
		CoverURL:    "https://picsum.photos/id/1044/300/450",
		Description: "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world where the only thing of value is the \"spice\" melange.",
		Category:    "Sci-Fi",
		Rating:      4.8,
	},
	{
		ID:          "7",
		Title:       "Thinking, Fast and Slow",
		Author:      "Daniel Kahneman",
		Price:       13.99,
		CoverURL:    "https://picsum.photos/id/1035/300/450",
		Description: "The major work of the Nobel Prize winner, explaining the two systems that drive the way we think.",
		Category:    "Psychology",
		Rating:      4.6,
	},
	{
		ID:          "8",
		Title:       "The Thursday Murder Club",
		Author:      "Richard Osman",
		Price:       10.00,
		CoverURL:    "https://picsum.photos/id/1031/300/450",
		Description: "In a peaceful retirement village, four unlikely friends meet weekly in the Jigsaw Room to discuss unsolved crimes.",
		Category:    "Crime",
		Rating:      4.4,
		Bestseller:  true,
	},
}

var categories = []string{
	"Fiction", "Non-Fiction", "Sci-Fi", "History", "Crime", "Biography", "Children", "Art",
}
