package entity

// FeatureCatalog lists the features offered on the signup form. Submissions are
// not restricted to it.
var FeatureCatalog = []string{
	"KBB & MMR Appraisals",
	"Carfax & AutoCheck Integration",
	"E-Signature",
	"Mobile Interface",
	"Social Media Integration",
	"Inventory Management",
	"Customer Management",
	"Sales Tracking",
	"BHPH Tools",
	"Credit Applications",
}

var MonthlyInventoryOptions = []string{"1-25", "26-50", "51-100", "101-250", "250+"}
