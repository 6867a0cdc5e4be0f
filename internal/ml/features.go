package ml

// FeatureDescriptions maps each model feature to a human-readable
// label, served by /model-info and reused in recommendation text.
var FeatureDescriptions = map[string]string{
	"HighBP":               "High Blood Pressure",
	"HighChol":             "High Cholesterol",
	"CholCheck":            "Cholesterol Check in 5 years",
	"BMI":                  "Body Mass Index",
	"Smoker":               "Smoking Status",
	"Stroke":               "History of Stroke",
	"HeartDiseaseorAttack": "Heart Disease or Attack",
	"PhysActivity":         "Physical Activity in past 30 days",
	"Fruits":               "Fruit Consumption",
	"Veggies":              "Vegetable Consumption",
	"HvyAlcoholConsump":    "Heavy Alcohol Consumption",
	"AnyHealthcare":        "Has Healthcare Coverage",
	"NoDocbcCost":          "Could not see doctor because of cost",
	"GenHlth":              "General Health (1-5)",
	"MentHlth":             "Mental Health (days)",
	"PhysHlth":             "Physical Health (days)",
	"DiffWalk":             "Difficulty Walking",
	"Sex":                  "Sex (0=Female, 1=Male)",
	"Age":                  "Age Category",
	"Education":            "Education Level",
	"Income":               "Income Level",
}
