package analysis

// EmotionPrompt asks for 3 to 5 bulleted emotion keywords followed by a
// summary paragraph.
func EmotionPrompt(transcript string) string {
	return "You are an emotion analyst.\n\n" +
		"Read the diary entries below. They were written by one person over a month, " +
		"with morning, afternoon and evening notes for each day.\n\n" +
		"Describe how this person's emotions moved through the month. Pay attention to:\n" +
		"- emotional words that come up often (for example tired, anxious, grateful)\n" +
		"- how the tone shifts between the beginning, middle and end of the month\n" +
		"- days or parts of the day with noticeable mood swings\n\n" +
		"Keyword rules:\n" +
		"- pick between 3 and 5 emotions that appeared most often\n" +
		"- one word per bullet, never combine words with slashes\n\n" +
		"Answer in English:\n" +
		"- first a bullet list of 3 to 5 emotion keywords, one per line\n" +
		"- then one paragraph of 200 to 300 words describing the emotional flow of the month\n\n" +
		"Diary:\n" + transcript
}

// RiskPrompt asks for a narrative paragraph that ends with exactly one of
// RiskMarkerYes or RiskMarkerNo on its own line.
func RiskPrompt(transcript string) string {
	return "You are a mental health analyst.\n\n" +
		"Read the diary entries below, written by one person over a month, and decide " +
		"whether they show signs of mental health risk such as:\n" +
		"- persistent low mood or fatigue\n" +
		"- emotional exhaustion or burnout\n" +
		"- anxiety, irritability or self-doubt\n" +
		"- hopelessness, isolation or avoidance\n\n" +
		"If you find such signs, write a 200 to 300 word paragraph in English explaining which " +
		"signals point to the risk, when in the month they appear, what kind of risk they may " +
		"indicate and gently suggesting a self-assessment or support.\n\n" +
		"If you find none, write a 200 to 300 word encouraging paragraph in English about the " +
		"resilience and self-awareness the entries show, suggesting a light personality or " +
		"emotional quiz for more insight.\n\n" +
		"End your answer with a final line that is exactly " + RiskMarkerYes + " or " + RiskMarkerNo + "\n\n" +
		"Diary:\n" + transcript
}

// CheckupPrompt asks for a short search phrase. The phrase targets
// self-assessment tests when hasRisk is set and light quizzes otherwise.
func CheckupPrompt(hasRisk bool) string {
	if hasRisk {
		return "Suggest a short English search phrase for a mental health self-assessment test (3~6 words). " +
			"Example: 'depression self assessment test', 'anxiety disorder checklist'"
	}
	return "Suggest a short English search phrase for a light personality or emotional quiz (3~6 words). " +
		"Example: 'personality type test', 'emotional awareness quiz'"
}

// OverviewPrompt asks for a labelled one-line summary and a short paragraph
// built from the emotion summary and the risk narrative.
func OverviewPrompt(emotionSummary, riskNarrative string) string {
	return "You are writing a short monthly summary for a mental health report in English.\n\n" +
		"Below are two summaries:\n" +
		"1. Emotional flow\n" +
		"2. Mental health risk analysis\n\n" +
		"Write a one line summary, like a title or a quote, and a paragraph of 2 to 3 sentences " +
		"under 100 words.\n\n" +
		"Respond in this format:\n" +
		OneLineSummaryLabel + " <summary>\n" +
		ParagraphSummaryLabel + " <paragraph>\n\n" +
		"Emotion Summary:\n" + emotionSummary + "\n\n" +
		"Risk Analysis:\n" + riskNarrative
}
