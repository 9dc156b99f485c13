package models

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `json:"category"`
	Image       string `json:"image"`
}

type Category string

const (
	CategoryBurgers    Category = "Burgers"
	CategoryValueMeals Category = "Value Meals"
	CategorySides      Category = "Sides"
	CategoryShakes     Category = "Shakes"
)

func Categories() []Category {
	return []Category{CategoryBurgers, CategoryValueMeals, CategorySides, CategoryShakes}
}

func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if string(c) == category {
			return true
		}
	}
	return false
}

// BuiltinMenu is the permanent catalog. Admin-created items are stored
// separately and unioned with these at read time; built-ins are never
// persisted and cannot be edited or deleted.
func BuiltinMenu() []MenuItem {
	return []MenuItem{
		{ID: "burger1", Name: "Cheeseburger", Description: "A classic cheeseburger with cheddar cheese, lettuce, and tomato.", Price: 599, Category: "Burgers", Image: "/assets/cheeseburger.webp"},
		{ID: "burger2", Name: "Veggie Burger", Description: "A plant-based burger with fresh vegetables and special sauce.", Price: 649, Category: "Burgers", Image: "/assets/veggie-burger.webp"},
		{ID: "burger3", Name: "Chicken Burger", Description: "Juicy chicken patty with pickles and mayo.", Price: 699, Category: "Burgers", Image: "/assets/chicken-burger.webp"},
		{ID: "meal1", Name: "Chicken Meal", Description: "Delicious fried chicken with fries and a drink.", Price: 899, Category: "Value Meals", Image: "/assets/chicken-meal.webp"},
		{ID: "meal2", Name: "Beef Meal", Description: "Tender beef steak served with mashed potatoes and gravy.", Price: 949, Category: "Value Meals", Image: "/assets/beef-meal.webp"},
		{ID: "meal3", Name: "Veggie Meal", Description: "Healthy vegetable stir-fry with rice and tofu.", Price: 799, Category: "Value Meals", Image: "/assets/veggie-meal.webp"},
		{ID: "side1", Name: "Fries", Description: "Crispy golden fries.", Price: 249, Category: "Sides", Image: "/assets/fries.webp"},
		{ID: "side2", Name: "Onion Rings", Description: "Crispy onion rings served with dipping sauce.", Price: 349, Category: "Sides", Image: "/assets/onion-rings.webp"},
		{ID: "side3", Name: "Salad", Description: "Fresh mixed greens with a light vinaigrette.", Price: 499, Category: "Sides", Image: "/assets/salad.webp"},
		{ID: "shake1", Name: "Chocolate Shake", Description: "Rich and creamy chocolate milkshake.", Price: 399, Category: "Shakes", Image: "/assets/chocolate-shake.webp"},
		{ID: "shake2", Name: "Vanilla Shake", Description: "Smooth and delicious vanilla milkshake.", Price: 349, Category: "Shakes", Image: "/assets/vanilla-shake.webp"},
		{ID: "shake3", Name: "Strawberry Shake", Description: "Sweet strawberry milkshake made with fresh fruit.", Price: 429, Category: "Shakes", Image: "/assets/strawberry-shake.webp"},
	}
}
