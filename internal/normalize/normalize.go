// Package normalize fixes common OCR and layout-extraction artifacts in
// document text: glued words, missing spaces, spaced-out acronyms.
package normalize

import (
	"regexp"
	"strings"
)

// replacement is one literal bad->good substring fix. The table is ordered:
// later entries may rewrite the output of earlier ones, so declaration
// order is part of the contract.
type replacement struct {
	bad  string
	good string
}

var ocrFixes = []replacement{
	// Glue errors observed in extracted text.
	{"savethe", "save the"}, {"fromthe", "from the"}, {"hamburgermenu", "hamburger menu"},
	{"renamethefile", "rename the file"}, {"changeaflat", "change a flat"}, {"formtoa", "form to a"},
	{"usingthe", "using the"}, {"enablingthe", "enabling the"}, {"FillinPDF", "Fill in PDF"},
	{"Istheform", "Is the form"}, {"doesnotin", "does not in"}, {"availablefrom", "available from"},
	{"Fromthetop", "From the top"}, {"Createa", "Create a"}, {"andthen", "and then"},
	{"selectthefile", "select the file"}, {"tothe", "to the"}, {"inthe", "in the"},
	{"ofthe", "of the"}, {"onthe", "on the"}, {"forthe", "for the"}, {"withthe", "with the"},
	{"youcan", "you can"}, {"itcan", "it can"}, {"SaveAs", "Save As"}, {"SaveAsin", "Save As in"},
	{"AdobeIn", "Adobe In"}, {"AdobePDF", "Adobe PDF"}, {"Fill&Sign", "Fill & Sign"},
	{"FillSign", "Fill & Sign"}, {"PDFMaker", "PDF Maker"}, {"PrepareForm", "Prepare Form"},
	{"SaveACopy", "Save A Copy"}, {"thefile", "the file"}, {"theform", "the form"},
	{"thetool", "the tool"}, {"thefield", "the field"}, {"thebutton", "the button"},
	{"youhave", "you have"}, {"youare", "you are"}, {"youwill", "you will"}, {"youwant", "you want"},
	{"itis", "it is"}, {"itwill", "it will"}, {"ithas", "it has"}, {"itdoes", "it does"},
	{"tosave", "to save"}, {"tocreate", "to create"}, {"tochange", "to change"}, {"tofill", "to fill"},
	{"forsave", "for save"}, {"forcreate", "for create"}, {"witha", "with a"}, {"withan", "with an"},
	{"asa", "as a"}, {"asan", "as an"}, {"ora", "or a"}, {"oran", "or an"},

	// Contractions.
	{"dont", "don't"}, {"cant", "can't"}, {"wont", "won't"}, {"doesnt", "doesn't"},
	{"isnt", "isn't"}, {"arent", "aren't"}, {"wasnt", "wasn't"}, {"werent", "weren't"},
	{"hasnt", "hasn't"}, {"havent", "haven't"}, {"wouldnt", "wouldn't"}, {"shouldnt", "shouldn't"},
	{"couldnt", "couldn't"}, {"mustnt", "mustn't"}, {"mightnt", "mightn't"},

	// Product names.
	{"AdobeAcrobat", "Adobe Acrobat"}, {"AdobeReader", "Adobe Reader"}, {"MicrosoftOffice", "Microsoft Office"},
	{"MicrosoftWord", "Microsoft Word"}, {"AdobePhotoshop", "Adobe Photoshop"},
	{"AdobeIllustrator", "Adobe Illustrator"}, {"AdobeInDesign", "Adobe InDesign"},
}

var (
	spaceRe   = regexp.MustCompile(`\s+`)
	acronymRe = regexp.MustCompile(`\b([A-Z]) ([A-Z]) ([A-Z])\b`)
	gluedRe   = regexp.MustCompile(`\b([a-z]+)([A-Z][a-z]+)\b`)
)

// Clean normalizes extracted text. Pure function; callers apply it once
// per text (a second application is not guaranteed to be a no-op for the
// glue-fix steps, only for whitespace collapse and the literal table).
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))

	for _, f := range ocrFixes {
		if strings.Contains(text, f.bad) {
			text = strings.ReplaceAll(text, f.bad, f.good)
		}
	}

	text = acronymRe.ReplaceAllString(text, "$1$2$3")
	text = gluedRe.ReplaceAllString(text, "$1 $2")

	return strings.TrimSpace(text)
}
