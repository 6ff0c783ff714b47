package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tuannh982/keyedseq/seq"
	"github.com/tuannh982/keyedseq/seq/commons"

	log "github.com/sirupsen/logrus"
)

type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(log.DebugLevel)
	logger := log.WithFields(log.Fields{"app": "keyedseq-demo"})

	books := seq.New[Book](seq.WithLogger(logger))
	for _, b := range []Book{
		{Title: "Dune", Author: "Herbert", Year: 1965},
		{Title: "Neuromancer", Author: "Gibson", Year: 1984},
		{Title: "Hyperion", Author: "Simmons", Year: 1989},
		{Title: "Foundation", Author: "Asimov", Year: 1951},
		{Title: "Count Zero", Author: "Gibson", Year: 1986},
	} {
		if err := books.Set(b.Title, b); err != nil {
			logger.WithError(err).Fatal("could not add book")
		}
	}
	// reserved names are accepted as data keys with a warning
	if err := books.Set("find", Book{Title: "find", Author: "nobody"}); err != nil {
		logger.WithError(err).Fatal("could not add book")
	}
	books.Delete("find")

	byYear := commons.By(func(b Book) int {
		return b.Year
	})
	for page := 1; page <= books.PageCount(2); page++ {
		logger.WithField("page", page).Info(books.Paginate(page, 2, byYear).Keys())
	}
	gibson := books.FindMany(commons.Query{"author": "Gibson"})
	logger.WithField("count", gibson.Len()).Info("books by Gibson")
	if last, ok := books.At(-1); ok {
		logger.WithField("title", last.Title).Info("last inserted")
	}
	data, err := json.MarshalIndent(gibson, "", "  ")
	if err != nil {
		logger.WithError(err).Fatal("could not encode")
	}
	fmt.Fprintln(os.Stdout, string(data))
}
