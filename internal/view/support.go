package view

import (
	"fmt"
	"io"
	"net/url"

	"github.com/bhushansable/Gurukrupa-Mess/internal/i18n"
)

// Contact details shown on the support screen.
const (
	WhatsAppNumber = "919876543210"
	PhoneNumber    = "9876543210"
	Email          = "contact@gurukrupamess.com"
	Location       = "Pune, Maharashtra, India"
	Hours          = "Mon-Sun: 11:00 AM - 9:00 PM"

	whatsAppGreeting = "Hello Gurukrupa Mess!"
)

// FAQ is one bilingual question and answer.
type FAQ struct {
	QuestionEN string `json:"question_en"`
	QuestionMR string `json:"question_mr"`
	AnswerEN   string `json:"answer_en"`
	AnswerMR   string `json:"answer_mr"`
}

var faqs = []FAQ{
	{
		QuestionEN: "What is included in a tiffin?",
		QuestionMR: "डब्यात काय असते?",
		AnswerEN:   "Each tiffin includes Dal, Rice, 4 Chapatis, Sabzi (vegetable), and Salad.",
		AnswerMR:   "प्रत्येक डब्यात डाळ, भात, ४ चपात्या, भाजी आणि सॅलड असतो.",
	},
	{
		QuestionEN: "What are the delivery timings?",
		QuestionMR: "डिलिव्हरीची वेळ काय आहे?",
		AnswerEN:   "Lunch: 11:30 AM - 1:30 PM, Dinner: 7:00 PM - 9:00 PM",
		AnswerMR:   "दुपार: ११:३० - १:३०, रात्री: ७:०० - ९:००",
	},
	{
		QuestionEN: "Can I cancel my subscription?",
		QuestionMR: "मी सदस्यता रद्द करू शकतो का?",
		AnswerEN:   "Yes, you can cancel anytime. Contact us via WhatsApp for cancellation.",
		AnswerMR:   "हो, तुम्ही कधीही रद्द करू शकता. रद्द करण्यासाठी व्हॉट्सॲपवर संपर्क करा.",
	},
	{
		QuestionEN: "Do you deliver on Sundays?",
		QuestionMR: "रविवारी डिलिव्हरी होते का?",
		AnswerEN:   "Yes! We deliver 7 days a week with special Sunday menu.",
		AnswerMR:   "हो! आम्ही आठवड्याचे ७ दिवस डिलिव्हरी करतो, रविवारचा स्पेशल मेनू असतो.",
	},
}

// FAQs returns the support questions.
func FAQs() []FAQ {
	return append([]FAQ(nil), faqs...)
}

// WhatsAppLink opens a chat with the mess with a greeting prefilled.
func WhatsAppLink() string {
	return "https://wa.me/" + WhatsAppNumber + "?text=" + url.QueryEscape(whatsAppGreeting)
}

// CallLink dials the mess.
func CallLink() string {
	return "tel:" + PhoneNumber
}

// Support renders contacts and the FAQ in the session language.
func Support(w io.Writer, t *i18n.Translator) error {
	heading(w, t.T("contact_us"))
	fmt.Fprintf(w, "%s: %s\n", t.T("whatsapp_us"), WhatsAppLink())
	fmt.Fprintf(w, "%s: %s\n", t.T("call_us"), CallLink())
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.T("gurukrupa_mess"))
	fmt.Fprintln(w, "  "+Location)
	fmt.Fprintln(w, "  "+Hours)
	fmt.Fprintln(w, "  "+Email)
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.T("faq"))
	for _, f := range faqs {
		fmt.Fprintf(w, "\nQ: %s\nA: %s\n", t.Pick(f.QuestionEN, f.QuestionMR), t.Pick(f.AnswerEN, f.AnswerMR))
	}
	return nil
}
