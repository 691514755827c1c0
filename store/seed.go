package store

import "github.com/yad-anakin/diva/models"

// DefaultServices returns the catalog seeded into an empty services table.
// Prices are in IQD.
func DefaultServices() []models.Service {
	return []models.Service{
		{Name: "سشوار الشعر", Price: 15000},
		{Name: "قص وتصفيف الشعر", Price: 20000},
		{Name: "صبغ الشعر", Price: 45000},
		{Name: "خصل ملونة", Price: 60000},
		{Name: "علاج كيراتين", Price: 80000},
		{Name: "مانيكير", Price: 12000},
		{Name: "باديكير", Price: 15000},
		{Name: "تنظيف بشرة", Price: 30000},
		{Name: "مكياج", Price: 50000},
		{Name: "تشذيب الحواجب", Price: 10000},
		{Name: "إزالة الشعر بالشمع", Price: 18000},
		{Name: "نقش حناء", Price: 25000},
		{Name: "رفع الرموش", Price: 35000},
		{Name: "تسريحة مناسبات", Price: 40000},
		{Name: "سبا فروة الرأس", Price: 22000},
	}
}

// DefaultEmployees returns the staff list seeded into an empty employees table.
func DefaultEmployees() []models.Employee {
	names := []string{
		"Alaa", "Sara", "Noor", "Lana", "Zahra", "Mira", "Huda", "Rasha",
		"Dalia", "Farah", "Aya", "Hanan", "Reem", "Rana", "Laila", "Noorhan",
		"Bushra", "Marwa", "Heba", "Rahma", "Yasmine", "Salma", "Dina", "Amal",
	}
	employees := make([]models.Employee, 0, len(names))
	for _, name := range names {
		employees = append(employees, models.Employee{Name: name})
	}
	return employees
}
