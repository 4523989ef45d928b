package memstore

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// Demo credentials created by Seed.
const (
	AdminEmail       = "admin@gurukrupa.com"
	AdminPassword    = "admin123"
	CustomerEmail    = "rahul@test.com"
	CustomerPassword = "test123"
)

const (
	customerAddress = "Flat 301, Sunrise Apartments, Kothrud, Pune"
	customerPhone   = "9876543211"
)

// HashCost is the bcrypt cost used for seeded and registered passwords.
var HashCost = bcrypt.DefaultCost

// HashPassword hashes a plaintext password with HashCost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Seed loads the demo admin, customer, menu, plans and orders. It does
// nothing once the admin account exists.
func (s *Store) Seed(ctx context.Context) (api.SeedResult, error) {
	if _, err := s.UserByEmail(ctx, AdminEmail); err == nil {
		return api.SeedResult{Message: "Data already seeded"}, nil
	}

	adminHash, err := HashPassword(AdminPassword)
	if err != nil {
		return api.SeedResult{}, err
	}
	customerHash, err := HashPassword(CustomerPassword)
	if err != nil {
		return api.SeedResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == AdminEmail {
			return api.SeedResult{Message: "Data already seeded"}, nil
		}
	}

	now := s.now().UTC()
	stamp := now.Format(TimeLayout)

	s.users = append(s.users,
		User{
			User: api.User{
				ID: uuid.NewString(), Name: "Admin", Email: AdminEmail, Phone: "9876543210",
				Address: "Gurukrupa Mess, Pune", Role: enum.UserRoleAdmin, LanguagePref: enum.LangEnglish, CreatedAt: stamp,
			},
			PasswordHash: adminHash,
		},
		User{
			User: api.User{
				ID: uuid.NewString(), Name: "Rahul Patil", Email: CustomerEmail, Phone: customerPhone,
				Address: customerAddress, Role: enum.UserRoleCustomer, LanguagePref: enum.LangEnglish, CreatedAt: stamp,
			},
			PasswordHash: customerHash,
		},
	)
	customer := s.users[len(s.users)-1]

	for _, it := range seedMenu {
		it.ID = uuid.NewString()
		it.IsAvailable = true
		it.CreatedAt = stamp
		s.menu = append(s.menu, it)
	}
	for _, p := range seedPlans {
		p.ID = uuid.NewString()
		p.IsActive = true
		p.CreatedAt = stamp
		s.plans = append(s.plans, p)
	}

	twoDaysAgo := now.AddDate(0, 0, -2).Format(TimeLayout)
	tiffin := []api.OrderItem{{Name: "Lunch Tiffin", Qty: 1, Price: 80}}
	s.orders = append(s.orders,
		api.Order{
			ID: uuid.NewString(), UserID: customer.ID, UserName: customer.Name, UserPhone: customerPhone,
			Items: tiffin, Total: 80, OrderType: enum.OrderTypeSingle, DeliveryAddress: customerAddress,
			Status: enum.OrderStatusDelivered, PaymentStatus: enum.PaymentStatusPaid,
			CreatedAt: twoDaysAgo, UpdatedAt: twoDaysAgo,
		},
		api.Order{
			ID: uuid.NewString(), UserID: customer.ID, UserName: customer.Name, UserPhone: customerPhone,
			Items: tiffin, Total: 80, OrderType: enum.OrderTypeSingle, DeliveryAddress: customerAddress,
			Notes: "Extra chapati please", Status: enum.OrderStatusPreparing, PaymentStatus: enum.PaymentStatusPaid,
			CreatedAt: stamp, UpdatedAt: stamp,
		},
	)

	log.Printf("Seeded %d menu items, %d plans and 2 demo orders", len(seedMenu), len(seedPlans))
	return api.SeedResult{
		Message:          "Seed data created successfully",
		AdminEmail:       AdminEmail,
		AdminPassword:    AdminPassword,
		CustomerEmail:    CustomerEmail,
		CustomerPassword: CustomerPassword,
	}, nil
}

func menuItem(en, mr, descEN, descMR, category, day string) api.MenuItem {
	return api.MenuItem{NameEN: en, NameMR: mr, DescriptionEN: descEN, DescriptionMR: descMR, Category: category, DayOfWeek: day}
}

var seedMenu = []api.MenuItem{
	menuItem("Dal Tadka", "डाळ तडका", "Yellow lentils tempered with spices", "मसाल्यांसह पिवळी डाळ", enum.CategoryDal, enum.DayDaily),
	menuItem("Chapati (4 pcs)", "चपाती (४ नग)", "Freshly made wheat chapatis", "ताज्या गव्हाच्या चपात्या", enum.CategoryRoti, enum.DayDaily),
	menuItem("Steamed Rice", "वाफवलेला भात", "Plain steamed basmati rice", "साधा बासमती भात", enum.CategoryRice, enum.DayDaily),
	menuItem("Aloo Gobi", "आलू गोबी", "Potato and cauliflower curry", "बटाटा आणि फुलकोबी भाजी", enum.CategorySabzi, enum.DayMonday),
	menuItem("Paneer Butter Masala", "पनीर बटर मसाला", "Cottage cheese in rich tomato gravy", "टोमॅटो ग्रेव्हीमध्ये पनीर", enum.CategorySabzi, enum.DayTuesday),
	menuItem("Bhindi Masala", "भिंडी मसाला", "Spiced okra stir-fry", "मसालेदार भेंडी", enum.CategorySabzi, enum.DayWednesday),
	menuItem("Mix Veg Curry", "मिक्स भाजी", "Seasonal mixed vegetables", "हंगामी मिश्र भाज्या", enum.CategorySabzi, enum.DayThursday),
	menuItem("Chole", "छोले", "Spiced chickpea curry", "मसालेदार चणे", enum.CategorySabzi, enum.DayFriday),
	menuItem("Matki Usal", "मटकी उसळ", "Sprouted moth beans curry", "अंकुरित मटकी उसळ", enum.CategorySabzi, enum.DaySaturday),
	menuItem("Varan Bhaat", "वरण भात", "Traditional dal rice combo", "पारंपारिक वरण भात", enum.CategorySabzi, enum.DaySunday),
	menuItem("Pickle", "लोणचे", "Homemade mango pickle", "घरगुती आंब्याचे लोणचे", enum.CategoryExtra, enum.DayDaily),
	menuItem("Salad", "सॅलड", "Fresh onion, cucumber salad", "ताजे कांदा, काकडी सॅलड", enum.CategorySalad, enum.DayDaily),
	menuItem("Gulab Jamun", "गुलाब जामुन", "Sweet milk dumplings", "गोड दुधाचे गुलाब जामुन", enum.CategorySweet, enum.DaySunday),
	menuItem("Shira", "शिरा", "Semolina sweet pudding", "रव्याचा गोड शिरा", enum.CategorySweet, enum.DayWednesday),
}

var seedPlans = []api.Plan{
	{
		NameEN:        "Weekly Plan",
		NameMR:        "साप्ताहिक प्लॅन",
		DescriptionEN: "7 days of delicious home-style meals. Lunch tiffin delivered daily.",
		DescriptionMR: "७ दिवसांचे स्वादिष्ट घरगुती जेवण. रोज दुपारचा डबा.",
		Price:         490, DurationDays: 7, MealsPerDay: 1,
	},
	{
		NameEN:        "Monthly Plan",
		NameMR:        "मासिक प्लॅन",
		DescriptionEN: "30 days of wholesome meals. Best value! Lunch tiffin delivered daily.",
		DescriptionMR: "३० दिवसांचे पौष्टिक जेवण. सर्वोत्तम किंमत! रोज दुपारचा डबा.",
		Price:         1800, DurationDays: 30, MealsPerDay: 1,
	},
	{
		NameEN:        "Monthly - 2 Meals",
		NameMR:        "मासिक - २ जेवण",
		DescriptionEN: "30 days, Lunch + Dinner. Complete meal solution for busy professionals.",
		DescriptionMR: "३० दिवस, दुपार + रात्री. व्यस्त व्यावसायिकांसाठी संपूर्ण जेवण.",
		Price:         3200, DurationDays: 30, MealsPerDay: 2,
	},
}
