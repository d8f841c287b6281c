package item

// Seed returns the demo master inventory loaded when no import has happened
// yet and demo seeding is enabled.
func Seed() []Record {
	return []Record{
		{EPC: "300833B2DDD9014000000000", Name: "Diamond Solitaire Ring", Category: "Rings", Price: 2500, ImageURL: "https://picsum.photos/seed/ring1/200", ShowroomArea: "Main Floor", CounterName: "Bridal A"},
		{EPC: "300833B2DDD9014000000001", Name: "Sapphire Pendant", Category: "Necklaces", Price: 1800, ImageURL: "https://picsum.photos/seed/necklace1/200", ShowroomArea: "Main Floor", CounterName: "Gemstones"},
		{EPC: "300833B2DDD9014000000002", Name: "Gold Bangle", Category: "Bracelets", Price: 1200, ImageURL: "https://picsum.photos/seed/bracelet1/200", ShowroomArea: "West Wing", CounterName: "Gold Section"},
		{EPC: "300833B2DDD9014000000003", Name: "Pearl Earrings", Category: "Earrings", Price: 750, ImageURL: "https://picsum.photos/seed/earrings1/200", ShowroomArea: "Main Floor", CounterName: "Classic Pearls"},
		{EPC: "300833B2DDD9014000000004", Name: "Emerald Cut Necklace", Category: "Necklaces", Price: 3200, ImageURL: "https://picsum.photos/seed/necklace2/200", ShowroomArea: "Main Floor", CounterName: "Gemstones"},
		{EPC: "300833B2DDD9014000000005", Name: "Ruby Tennis Bracelet", Category: "Bracelets", Price: 4500, ImageURL: "https://picsum.photos/seed/bracelet2/200", ShowroomArea: "VIP Lounge", CounterName: "High Value"},
		{EPC: "300833B2DDD9014000000006", Name: "Platinum Wedding Band", Category: "Rings", Price: 1500, ImageURL: "https://picsum.photos/seed/ring2/200", ShowroomArea: "Main Floor", CounterName: "Bridal B"},
		{EPC: "300833B2DDD9014000000007", Name: "Diamond Studs", Category: "Earrings", Price: 1900, ImageURL: "https://picsum.photos/seed/earrings2/200", ShowroomArea: "Main Floor", CounterName: "Bridal A"},
		{EPC: "300833B2DDD9014000000008", Name: "Silver Charm Bracelet", Category: "Bracelets", Price: 450, ImageURL: "https://picsum.photos/seed/bracelet3/200", ShowroomArea: "West Wing", CounterName: "Fashion"},
		{EPC: "300833B2DDD9014000000009", Name: "Opal Ring", Category: "Rings", Price: 950, ImageURL: "https://picsum.photos/seed/ring3/200", ShowroomArea: "Main Floor", CounterName: "Gemstones"},
		{EPC: "300833B2DDD9014000000010", Name: "Heart Locket", Category: "Necklaces", Price: 600, ImageURL: "https://picsum.photos/seed/necklace3/200", ShowroomArea: "West Wing", CounterName: "Fashion"},
		{EPC: "300833B2DDD9014000000011", Name: "Hoop Earrings", Category: "Earrings", Price: 300, ImageURL: "https://picsum.photos/seed/earrings3/200", ShowroomArea: "West Wing", CounterName: "Fashion"},
		{EPC: "300833B2DDD9014000000012", Name: "Vintage Cameo Ring", Category: "Rings", Price: 1100, ImageURL: "https://picsum.photos/seed/ring4/200", ShowroomArea: "East Wing", CounterName: "Estate Jewelry"},
		{EPC: "300833B2DDD9014000000013", Name: "Turquoise Cuff", Category: "Bracelets", Price: 850, ImageURL: "https://picsum.photos/seed/bracelet4/200", ShowroomArea: "West Wing", CounterName: "Fashion"},
		{EPC: "300833B2DDD9014000000014", Name: "Garnet Teardrop Necklace", Category: "Necklaces", Price: 1350, ImageURL: "https://picsum.photos/seed/necklace4/200", ShowroomArea: "Main Floor", CounterName: "Gemstones"},
	}
}
