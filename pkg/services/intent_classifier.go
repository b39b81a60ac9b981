package services

import (
	"strings"

	"vita-path-api/pkg/models"
)

// Language tags returned by script detection.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// IntentRule pairs a keyword set with a category and its canned bilingual
// responses. Keywords carry both Latin and Devanagari terms; matching checks
// all of them regardless of the detected script.
type IntentRule struct {
	Category     string
	Keywords     []string
	EnglishReply string
	HindiReply   string
}

// IntentClassifier maps free-text utterances to a category and a canned
// reply via ordered keyword matching. It is a total function: the final rule
// matches unconditionally, so every input, including the empty string, gets
// a result. Deterministic by design; there is no learned model to drift.
type IntentClassifier struct {
	rules []IntentRule
}

// NewIntentClassifier creates a classifier with the built-in rule set.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{rules: defaultIntentRules()}
}

// DetectScript reports "hi" if the text contains any Devanagari codepoint
// (U+0900 to U+097F), else "en". The result selects which half of a rule's
// bilingual response is returned; it does not influence rule matching.
func DetectScript(text string) string {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return LanguageHindi
		}
	}
	return LanguageEnglish
}

// Classify returns the first rule whose keywords appear in the input.
// Matching is substring-based on the lower-cased text; rule order resolves
// inputs containing keywords of several categories, so the order must stay
// stable for input compatibility.
func (ic *IntentClassifier) Classify(text string) IntentRule {
	message := strings.ToLower(text)
	for _, rule := range ic.rules {
		if len(rule.Keywords) == 0 {
			return rule
		}
		for _, keyword := range rule.Keywords {
			if strings.Contains(message, keyword) {
				return rule
			}
		}
	}
	// Unreachable: the last rule has no keywords and always matches.
	return ic.rules[len(ic.rules)-1]
}

// Respond composes the full reply for an utterance: matched category,
// detected language, and the response body in that language.
func (ic *IntentClassifier) Respond(text string) models.ChatReply {
	rule := ic.Classify(text)
	language := DetectScript(text)

	body := rule.EnglishReply
	if language == LanguageHindi {
		body = rule.HindiReply
	}
	return models.ChatReply{
		Category:         rule.Category,
		DetectedLanguage: language,
		Body:             body,
	}
}

// defaultIntentRules returns the rule table in priority order: food,
// ayurveda, navigation, safety, monsoon health, then the unconditional
// general fallback.
func defaultIntentRules() []IntentRule {
	return []IntentRule{
		{
			Category: "food",
			Keywords: []string{"meal", "food", "खाना", "भोजन"},
			EnglishReply: "Based on your health profile and Indian preferences, I recommend:\n\n" +
				"🥗 Dal-Rice with mixed vegetables and curd\n" +
				"🍛 Quinoa upma with coconut chutney\n" +
				"🥙 Roti with palak paneer\n" +
				"🍲 Sambar with idli\n\n" +
				"These provide complete proteins, fiber, and essential vitamins. Would you like a specific recipe?",
			HindiReply: "आपके स्वास्थ्य प्रोफाइल के अनुसार, मैं सुझाता हूं:\n\n" +
				"🥗 दाल-चावल with सब्जी और दही\n" +
				"🍛 क्विनोआ उपमा with नारियल चटनी\n" +
				"🥙 रोटी with पालक पनीर\n" +
				"🍲 सांभर with इडली\n\n" +
				"ये सभी प्रोटीन, फाइबर और विटामिन से भरपूर हैं। क्या आप किसी specific recipe के बारे में जानना चाहते हैं?",
		},
		{
			Category: "ayurveda",
			Keywords: []string{"ayurved", "आयुर्वेद", "remedy", "उपाय"},
			EnglishReply: "Ayurvedic recommendations:\n\n" +
				"🌿 For heat: Coconut water, amla juice, mint\n" +
				"🍯 For digestion: Ajwain, hing, cumin water\n" +
				"🧘 For stress: Ashwagandha, brahmi, yoga\n" +
				"🌱 For immunity: Tulsi, giloy, turmeric\n\n" +
				"Please consult an Ayurvedic doctor before taking any herbs.",
			HindiReply: "आयुर्वेदिक सुझाव:\n\n" +
				"🌿 गर्मी के लिए: नारियल पानी, आंवला जूस, पुदीना\n" +
				"🍯 पाचन के लिए: अजवाइन, हींग, जीरा पानी\n" +
				"🧘 तनाव के लिए: अश्वगंधा, ब्राह्मी, योग\n" +
				"🌱 रोग प्रतिरोधक क्षमता: तुलसी, गिलोय, हल्दी\n\n" +
				"कृपया किसी भी जड़ी-बूटी का सेवन करने से पहले आयुर्वेदिक डॉक्टर से सलाह लें।",
		},
		{
			Category: "navigation",
			Keywords: []string{"route", "traffic", "रास्ता", "ट्रैफिक"},
			EnglishReply: "Mumbai traffic suggestions:\n\n" +
				"🚇 Use Metro/Local trains (avoid 9-11 AM, 4-7 PM rush)\n" +
				"🛣️ Take Link Road instead of SV Road\n" +
				"⏰ Avoid rush hours (8-11 AM, 6-9 PM)\n" +
				"📱 Check Google Maps live traffic\n" +
				"🏍️ Bike taxi for short distances\n\n" +
				"Which specific route do you need?",
			HindiReply: "मुंबई ट्रैफिक के लिए सुझाव:\n\n" +
				"🚇 मेट्रो/लोकल ट्रेन का उपयोग करें (9-11 AM, 4-7 PM में भीड़ से बचें)\n" +
				"🛣️ SV Road की बजाय Link Road का उपयोग करें\n" +
				"⏰ Rush hours (8-11 AM, 6-9 PM) से बचें\n" +
				"📱 Google Maps live traffic देखें\n" +
				"🏍️ छोटी दूरी के लिए bike taxi\n\n" +
				"कौन सा specific route चाहिए?",
		},
		{
			Category: "safety",
			Keywords: []string{"safety", "women", "सुरक्षा", "महिला"},
			EnglishReply: "Women safety tips:\n\n" +
				"🚨 Emergency numbers: 100 (Police), 1091 (Women Helpline)\n" +
				"📱 Share live location with family\n" +
				"🌃 Stick to well-lit areas at night\n" +
				"👥 Prefer crowded places\n" +
				"🚗 Use trusted cab services\n" +
				"📞 Use fake call feature when needed\n\n" +
				"Keep panic button always ready!",
			HindiReply: "महिला सुरक्षा सुझाव:\n\n" +
				"🚨 Emergency numbers: 100 (Police), 1091 (Women Helpline)\n" +
				"📱 Location sharing family के साथ करें\n" +
				"🌃 रात में well-lit areas में चलें\n" +
				"👥 Crowded places prefer करें\n" +
				"🚗 Trusted cab services का उपयोग करें\n" +
				"📞 Fake call feature का उपयोग करें\n\n" +
				"Panic button हमेशा ready रखें!",
		},
		{
			Category: "health",
			Keywords: []string{"monsoon", "rain", "मानसून", "बारिश"},
			EnglishReply: "Monsoon health tips:\n\n" +
				"☔ Avoid getting wet in rain\n" +
				"🦠 Boost immunity with turmeric milk\n" +
				"🏠 Do indoor exercises: yoga, stretching\n" +
				"🍲 Eat warm food, avoid street food\n" +
				"💧 Drink boiled water\n" +
				"👕 Wear dry clothes\n\n" +
				"Avoid waterlogged areas!",
			HindiReply: "मानसून स्वास्थ्य सुझाव:\n\n" +
				"☔ बारिश में भीगने से बचें\n" +
				"🦠 Immunity बढ़ाने के लिए हल्दी दूध पिएं\n" +
				"🏠 Indoor exercises करें: yoga, stretching\n" +
				"🍲 गर्म खाना खाएं, street food से बचें\n" +
				"💧 Boiled water पिएं\n" +
				"👕 सूखे कपड़े पहनें\n\n" +
				"Waterlogging areas से बचें!",
		},
		{
			Category: "general",
			EnglishReply: "I'm here to help you with:\n\n" +
				"🍽️ Healthy Indian meal suggestions\n" +
				"🏃 Exercise and fitness routines\n" +
				"🗺️ Safe routes in Mumbai\n" +
				"🌿 Ayurvedic remedies\n" +
				"👩 Women safety tips\n" +
				"🌧️ Monsoon health advice\n\n" +
				"What specific area would you like assistance with?",
			HindiReply: "मैं आपकी मदद करने के लिए यहां हूं! आप मुझसे पूछ सकते हैं:\n\n" +
				"🍽️ भारतीय स्वस्थ भोजन के बारे में\n" +
				"🏃 व्यायाम और फिटनेस\n" +
				"🗺️ मुंबई में सुरक्षित रास्ते\n" +
				"🌿 आयुर्वेदिक उपचार\n" +
				"👩 महिला सुरक्षा\n" +
				"🌧️ मानसून स्वास्थ्य\n\n" +
				"आप किस बारे में जानना चाहते हैं?",
		},
	}
}
