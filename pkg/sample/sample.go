// Package sample holds the demo dataset loaded by the admin "sample data"
// action. Every call returns fresh slices, so callers may keep or mutate them.
package sample

import (
	"fmt"

	"Digital-Menu-Builder/entities"
)

const imageQuery = "?auto=compress&cs=tinysrgb&w=400"

func Categories() []entities.Category {
	return []entities.Category{
		{ID: "1", DisplayName: "Reggelik", Icon: "Coffee"},
		{ID: "2", DisplayName: "Főételek", Icon: "Beef"},
		{ID: "3", DisplayName: "Desszertek", Icon: "IceCream"},
	}
}

func MenuItems() []entities.MenuItem {
	return []entities.MenuItem{
		{
			ID:               "1",
			DisplayName:      "Klasszikus Magyar Reggeli",
			OrderNumber:      101,
			CategoryID:       "1",
			Price:            2890,
			Currency:         "HUF",
			Ingredients:      "Két tojás, szalonna, kolbász, kenyér, paradicsom",
			Allergens:        "Tojás, Glutén",
			Calories:         calories(650),
			ExtraDescription: "Hagyományos magyar reggeli friss alapanyagokból",
			Image:            pexels(101533),
		},
		{
			ID:          "2",
			DisplayName: "Palacsinta Nutellával",
			OrderNumber: 102,
			CategoryID:  "1",
			Price:       1890,
			Currency:    "HUF",
			Ingredients: "Három palacsinta, Nutella, porcukor",
			Allergens:   "Glutén, Tejtermék, Mogyoró",
			Calories:    calories(520),
			Image:       pexels(376464),
		},
		{
			ID:               "3",
			DisplayName:      "Rántott Schnitzel",
			OrderNumber:      201,
			CategoryID:       "2",
			Price:            3490,
			Currency:         "HUF",
			Ingredients:      "Sertéshús, bundázás, petrezselymes burgonya, savanyúság",
			Allergens:        "Glutén, Tojás",
			Calories:         calories(750),
			ExtraDescription: "Házi készítésű schnitzel friss burgonyával",
			Image:            pexels(8753657),
		},
		{
			ID:                    "4",
			DisplayName:           "Goulash Leves",
			OrderNumber:           202,
			CategoryID:            "2",
			Price:                 1890,
			Currency:              "HUF",
			Ingredients:           "Marhahús, burgonya, paprika, hagyma, fűszerek",
			Allergens:             "Glutén",
			Calories:              calories(420),
			PhoneticPronunciation: "GU-lash LE-vesh",
			Image:                 pexels(539451),
		},
		{
			ID:               "5",
			DisplayName:      "Somlói Galuska",
			OrderNumber:      301,
			CategoryID:       "3",
			Price:            1590,
			Currency:         "HUF",
			Ingredients:      "Piskóta, dió, mazsola, csokoládé, tejszín",
			Allergens:        "Glutén, Tejtermék, Dió, Tojás",
			Calories:         calories(480),
			ExtraDescription: "Hagyományos magyar desszert",
			Image:            pexels(1126359),
		},
		{
			ID:                    "6",
			DisplayName:           "Kürtőskalács",
			OrderNumber:           302,
			CategoryID:            "3",
			Price:                 890,
			Currency:              "HUF",
			Ingredients:           "Édes tészta, cukor, fahéj",
			Allergens:             "Glutén, Tejtermék, Tojás",
			Calories:              calories(320),
			PhoneticPronunciation: "KUER-tosh-ka-lach",
			ExtraDescription:      "Frissen sült, meleg kürtőskalács",
			Image:                 pexels(4110256),
		},
	}
}

func Offers() []entities.Offer {
	return []entities.Offer{
		{
			ID:                 "1",
			DisplayName:        "Hétfő-Csütörtök Reggeli Akció",
			Description:        "Hétfőtől csütörtökig 20% kedvezmény a reggelikből",
			IsRecurring:        true,
			DaysOfWeek:         []int{1, 2, 3, 4},
			DiscountPercentage: discount(20),
			IsActive:           true,
			Categories: []entities.Category{
				{ID: "offer1-cat1", DisplayName: "Akciós Reggelik", Icon: "Coffee"},
			},
			MenuItems: []entities.MenuItem{
				{
					ID:               "offer1-item1",
					DisplayName:      "Akciós Magyar Reggeli",
					OrderNumber:      101,
					CategoryID:       "offer1-cat1",
					Price:            2312,
					Currency:         "HUF",
					Ingredients:      "Két tojás, szalonna, kolbász, kenyér, paradicsom",
					Allergens:        "Tojás, Glutén",
					Calories:         calories(650),
					ExtraDescription: "Hagyományos magyar reggeli 20% kedvezménnyel",
					Image:            pexels(101533),
				},
				{
					ID:               "offer1-item2",
					DisplayName:      "Akciós Palacsinta",
					OrderNumber:      102,
					CategoryID:       "offer1-cat1",
					Price:            1512,
					Currency:         "HUF",
					Ingredients:      "Három palacsinta, Nutella, porcukor",
					Allergens:        "Glutén, Tejtermék, Mogyoró",
					Calories:         calories(520),
					ExtraDescription: "Nutellás palacsinta 20% kedvezménnyel",
					Image:            pexels(376464),
				},
			},
		},
		{
			ID:                 "2",
			DisplayName:        "Hétvégi Családi Menü",
			Description:        "Szombat-vasárnap családi kedvezmények",
			IsRecurring:        true,
			DaysOfWeek:         []int{0, 6},
			DiscountPercentage: discount(15),
			IsActive:           true,
			Categories: []entities.Category{
				{ID: "offer2-cat1", DisplayName: "Családi Főételek", Icon: "Beef"},
			},
			MenuItems: []entities.MenuItem{
				{
					ID:               "offer2-item1",
					DisplayName:      "Családi Schnitzel Tál",
					OrderNumber:      201,
					CategoryID:       "offer2-cat1",
					Price:            2966,
					Currency:         "HUF",
					Ingredients:      "Nagy adag sertéshús, bundázás, petrezselymes burgonya",
					Allergens:        "Glutén, Tojás",
					Calories:         calories(950),
					ExtraDescription: "15% kedvezmény hétvégén, családi méret",
					Image:            pexels(8753657),
				},
			},
		},
		{
			ID:                 "3",
			DisplayName:        "Csütörtöki Desszert Akció",
			Description:        "Minden csütörtökön 25% kedvezmény a desszertekből",
			IsRecurring:        true,
			DaysOfWeek:         []int{4},
			DiscountPercentage: discount(25),
			IsActive:           true,
			Categories: []entities.Category{
				{ID: "offer3-cat1", DisplayName: "Akciós Desszertek", Icon: "IceCream"},
			},
			MenuItems: []entities.MenuItem{
				{
					ID:               "offer3-item1",
					DisplayName:      "Akciós Somlói Galuska",
					OrderNumber:      301,
					CategoryID:       "offer3-cat1",
					Price:            1192,
					Currency:         "HUF",
					Ingredients:      "Piskóta, dió, mazsola, csokoládé, tejszín",
					Allergens:        "Glutén, Tejtermék, Dió, Tojás",
					Calories:         calories(480),
					ExtraDescription: "Hagyományos magyar desszert 25% kedvezménnyel",
					Image:            pexels(1126359),
				},
				{
					ID:                    "offer3-item2",
					DisplayName:           "Akciós Kürtőskalács",
					OrderNumber:           302,
					CategoryID:            "offer3-cat1",
					Price:                 667,
					Currency:              "HUF",
					Ingredients:           "Édes tészta, cukor, fahéj",
					Allergens:             "Glutén, Tejtermék, Tojás",
					Calories:              calories(320),
					PhoneticPronunciation: "KUER-tosh-ka-lach",
					ExtraDescription:      "Frissen sült kürtőskalács 25% kedvezménnyel",
					Image:                 pexels(4110256),
				},
			},
		},
	}
}

func calories(v int) *int { return &v }

func discount(v float64) *float64 { return &v }

func pexels(photo int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg%s", photo, photo, imageQuery)
}
