package corrector

import "ngramcorrector/internal/corpus"

func sampleDocs() []corpus.Document {
	return []corpus.Document{
		corpus.NewDocument("1", "Cat sat", "The cat sat on the mat"),
		corpus.NewDocument("2", "", "The big dog ran home. The big dog sat."),
		corpus.NewDocument("3", "Doc notes", "My doc is here, a hat and a cap."),
		{ID: "4"},
		corpus.NewDocument("5", "Markets", "Cocoa prices rose as the dollar fell; cocoa traders said prices may fall."),
	}
}
