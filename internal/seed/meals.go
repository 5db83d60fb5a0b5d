package seed

// mealTemplate is a fixed meal with known nutrition used for sample data.
type mealTemplate struct {
	slug          string
	notes         string
	calories      float64
	fats          float64
	sugars        float64
	carbohydrates float64
	proteins      float64
}

// sampleMeals are logged for the test user on install.
var sampleMeals = []mealTemplate{
	{"grilled-chicken-quinoa-broccoli", "Grilled chicken breast with quinoa and steamed broccoli", 380, 12.5, 8.2, 45.3, 22.1},
	{"salmon-sweet-potato-asparagus", "Salmon fillet with sweet potato and asparagus", 420, 8.7, 15.4, 67.8, 18.9},
	{"greek-yogurt-berries-granola", "Greek yogurt with berries and granola", 320, 6.2, 12.1, 52.4, 15.7},
	{"turkey-burger-avocado-salad", "Turkey burger with avocado and side salad", 450, 14.8, 6.9, 38.2, 28.3},
	{"pasta-marinara-lean-beef", "Pasta with marinara sauce and lean ground beef", 380, 9.1, 18.7, 58.9, 12.4},
}

// generatedMeals are drawn from at random by GenerateLogs.
var generatedMeals = []mealTemplate{
	// Breakfast
	{"greek-yogurt-berries-granola-honey", "Greek yogurt with berries, granola, and honey", 320, 8.2, 12.4, 45.6, 18.7},
	{"avocado-toast-scrambled-eggs-spinach", "Avocado toast with scrambled eggs and spinach", 380, 12.1, 6.8, 38.9, 22.3},
	{"oatmeal-banana-walnuts-almond-milk", "Oatmeal with banana, walnuts, and almond milk", 340, 6.7, 15.2, 52.4, 15.8},
	// Lunch
	{"grilled-chicken-salad-quinoa-vegetables", "Grilled chicken salad with quinoa, vegetables, and olive oil dressing", 450, 14.8, 8.9, 42.1, 28.5},
	{"turkey-avocado-wrap-mixed-greens", "Turkey and avocado wrap with mixed greens", 420, 11.3, 12.7, 58.2, 24.1},
	{"salmon-brown-rice-steamed-broccoli", "Salmon fillet with brown rice and steamed broccoli", 380, 9.6, 6.4, 48.7, 26.8},
	// Dinner
	{"grilled-steak-sweet-potato-asparagus", "Grilled steak with sweet potato and asparagus", 520, 16.2, 9.8, 52.3, 32.1},
	{"pasta-marinara-lean-beef-parmesan", "Pasta with marinara sauce, lean ground beef, and parmesan", 480, 13.7, 11.4, 61.8, 28.9},
	{"baked-cod-roasted-vegetables-quinoa", "Baked cod with roasted vegetables and quinoa", 410, 10.4, 7.2, 45.6, 31.2},
	// Snacks
	{"apple-slices-almond-butter-dark-chocolate", "Apple slices with almond butter and dark chocolate", 280, 7.8, 18.6, 38.4, 12.3},
	{"mixed-berries-cottage-cheese-honey", "Mixed berries with cottage cheese and honey", 260, 5.9, 14.2, 42.1, 8.7},
	{"hummus-carrot-sticks-whole-grain-crackers", "Hummus with carrot sticks and whole grain crackers", 290, 9.1, 8.3, 35.7, 16.4},
	// Indulgent
	{"cheeseburger-fries-milkshake", "Cheeseburger with fries and a milkshake", 580, 22.4, 28.7, 68.9, 18.2},
	{"pizza-pepperoni-extra-cheese", "Pizza slice with pepperoni and extra cheese", 540, 19.8, 24.1, 72.3, 15.6},
}
