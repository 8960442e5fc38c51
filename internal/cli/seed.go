package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/bookify/bookify-server/internal/config"
	"github.com/bookify/bookify-server/internal/database"
	"github.com/bookify/bookify-server/internal/database/books"
	"github.com/bookify/bookify-server/internal/database/reviews"
	"github.com/bookify/bookify-server/internal/entities"
)

// SeedCommand populates the catalog with a sample set of books and
// reviews. Books whose ISBN is already present are skipped, so the
// command is safe to re-run.
type SeedCommand struct {
	DatabasePath string
	Verbose      bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the catalog database with sample books and reviews.\n")
		fmt.Fprintf(os.Stderr, "Books already present (matched by ISBN) are left untouched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	booksRepo := books.NewRepository(db.DB)
	reviewsRepo := reviews.NewRepository(db.DB)

	created := 0
	for _, seed := range sampleCatalog() {
		book := seed.book
		if err := booksRepo.Create(&book); err != nil {
			if err == database.ErrDuplicateISBN {
				if cmd.Verbose {
					fmt.Printf("Skipping %q, ISBN already present\n", book.Title)
				}
				continue
			}
			return fmt.Errorf("failed to seed book %q: %w", book.Title, err)
		}
		created++

		for _, review := range seed.reviews {
			review.BookID = book.ID
			if err := reviewsRepo.Create(&review); err != nil {
				return fmt.Errorf("failed to seed review for %q: %w", book.Title, err)
			}
		}

		if cmd.Verbose {
			fmt.Printf("Seeded %q by %s (%d reviews)\n", book.Title, book.Author, len(seed.reviews))
		}
	}

	fmt.Printf("Seeded %d books\n", created)
	return nil
}

type seedBook struct {
	book    entities.Book
	reviews []entities.Review
}

func isbn(value string) *string {
	return &value
}

func sampleCatalog() []seedBook {
	return []seedBook{
		{
			book: entities.Book{
				Title:           "The Great Gatsby",
				Author:          "F. Scott Fitzgerald",
				ISBN:            isbn("9780743273565"),
				Description:     "A masterpiece of American literature set in the Jazz Age, telling the story of Jay Gatsby and his obsessive love for Daisy Buchanan.",
				Genre:           "Literary Fiction",
				PublicationYear: 1925,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780743273565-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Emma Clarke", Rating: 5, Comment: "Beautiful prose, devastating ending."},
				{ReviewerName: "Daniel Reyes", Rating: 4, Comment: "The green light stays with you."},
			},
		},
		{
			book: entities.Book{
				Title:           "1984",
				Author:          "George Orwell",
				ISBN:            isbn("9780451524935"),
				Description:     "A dystopian novel set in a totalitarian state where the government controls every aspect of life.",
				Genre:           "Dystopian",
				PublicationYear: 1949,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780451524935-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Priya Nair", Rating: 5, Comment: "More relevant every year."},
			},
		},
		{
			book: entities.Book{
				Title:           "To Kill a Mockingbird",
				Author:          "Harper Lee",
				ISBN:            isbn("9780061120084"),
				Description:     "A classic American novel about racial injustice in the Deep South.",
				Genre:           "Literary Fiction",
				PublicationYear: 1960,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780061120084-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Tom Whitfield", Rating: 5, Comment: "Atticus Finch is unforgettable."},
				{ReviewerName: "Sofia Marino", Rating: 4},
			},
		},
		{
			book: entities.Book{
				Title:           "Pride and Prejudice",
				Author:          "Jane Austen",
				ISBN:            isbn("9780141439518"),
				Description:     "A romantic novel about Elizabeth Bennet and Mr. Darcy, exploring themes of love and social class.",
				Genre:           "Romance",
				PublicationYear: 1813,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg",
			},
		},
		{
			book: entities.Book{
				Title:           "The Hobbit",
				Author:          "J.R.R. Tolkien",
				ISBN:            isbn("9780547928227"),
				Description:     "Bilbo Baggins is swept into a quest to reclaim the lost Dwarf Kingdom of Erebor.",
				Genre:           "Fantasy",
				PublicationYear: 1937,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780547928227-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Lena Hoffmann", Rating: 5, Comment: "The perfect adventure story."},
			},
		},
		{
			book: entities.Book{
				Title:           "Dune",
				Author:          "Frank Herbert",
				ISBN:            isbn("9780441172719"),
				Description:     "Set on the desert planet Arrakis, a saga of politics, religion and ecology.",
				Genre:           "Science Fiction",
				PublicationYear: 1965,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780441172719-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Marcus Webb", Rating: 4, Comment: "Dense but rewarding."},
				{ReviewerName: "Ines Aubert", Rating: 5},
			},
		},
		{
			book: entities.Book{
				Title:           "Brave New World",
				Author:          "Aldous Huxley",
				ISBN:            isbn("9780060850524"),
				Description:     "A futuristic society engineered for stability at the cost of freedom.",
				Genre:           "Dystopian",
				PublicationYear: 1932,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780060850524-L.jpg",
			},
		},
		{
			book: entities.Book{
				Title:           "The Name of the Wind",
				Author:          "Patrick Rothfuss",
				ISBN:            isbn("9780756404741"),
				Description:     "The story of Kvothe, told in his own voice, from troupe child to legend.",
				Genre:           "Fantasy",
				PublicationYear: 2007,
				CoverImage:      "https://covers.openlibrary.org/b/isbn/9780756404741-L.jpg",
			},
			reviews: []entities.Review{
				{ReviewerName: "Owen Burke", Rating: 4, Comment: "Gorgeous storytelling."},
			},
		},
	}
}
