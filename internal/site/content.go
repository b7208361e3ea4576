package site

// NavLink is one entry of the top navigation.
type NavLink struct {
	Name string
	Href string
}

// Service is a card in the services section.
type Service struct {
	Icon        string
	Title       string
	Description string
}

// Project is a portfolio entry.
type Project struct {
	ID       int
	Category Category
	Title    string
	Image    string
}

// TeamMember is a card in the team carousel.
type TeamMember struct {
	Name  string
	Role  string
	Image string
}

// FAQItem is one question of the accordion.
type FAQItem struct {
	Question string
	Answer   string
}

// Stat is a highlighted number in the about section.
type Stat struct {
	Value string
	Label string
}

// StudioContact is the studio's public contact information.
type StudioContact struct {
	Phone   string
	Email   string
	Address string
}

// Brand names used in the navigation and footer.
const (
	BrandPrimary   = "LUXE"
	BrandSecondary = "STUDIO"
	BrandLegalName = "Luxe Interior Studio"
)

func NavLinks() []NavLink {
	return []NavLink{
		{Name: "Bosh sahifa", Href: "#home"},
		{Name: "Biz haqimizda", Href: "#about"},
		{Name: "Xizmatlar", Href: "#services"},
		{Name: "Portfolio", Href: "#portfolio"},
		{Name: "FAQ", Href: "#faq"},
		{Name: "Kontakt", Href: "#contact"},
	}
}

func Services() []Service {
	return []Service{
		{Icon: "lucide--home", Title: "Uy loyihasi", Description: "Sizning shaxsiy uyingiz uchun noyob arxitektura va dizayn yechimlari."},
		{Icon: "lucide--layout", Title: "Ichki dizayn", Description: "Har bir xonadonning ichki qismini san'at asariga aylantiramiz."},
		{Icon: "lucide--building-2", Title: "Noturar binolar", Description: "Ofislar, restoranlar va mehmonxonalar uchun premium dizayn."},
		{Icon: "lucide--globe", Title: "Masofaviy dizayn", Description: "Dunyoning istalgan nuqtasidan turib loyihalaringizni boshqaramiz."},
	}
}

// Projects returns the portfolio fixture: two projects per category.
func Projects() []Project {
	return []Project{
		{ID: 1, Category: CategoryInterior, Title: "Modern Loft", Image: "https://picsum.photos/seed/p1/600/800"},
		{ID: 2, Category: CategoryHouse, Title: "Villa Azure", Image: "https://picsum.photos/seed/p2/600/600"},
		{ID: 3, Category: CategoryCommercial, Title: "Tech Office", Image: "https://picsum.photos/seed/p3/600/700"},
		{ID: 4, Category: CategoryInterior, Title: "Minimalist Flat", Image: "https://picsum.photos/seed/p4/600/600"},
		{ID: 5, Category: CategoryHouse, Title: "Mountain Cabin", Image: "https://picsum.photos/seed/p5/600/900"},
		{ID: 6, Category: CategoryCommercial, Title: "Sky Bar", Image: "https://picsum.photos/seed/p6/600/600"},
	}
}

func TeamMembers() []TeamMember {
	return []TeamMember{
		{Name: "Alex Johnson", Role: "Bosh dizayner", Image: "https://picsum.photos/seed/t1/400/400"},
		{Name: "Sarah Miller", Role: "Arxitektor", Image: "https://picsum.photos/seed/t2/400/400"},
		{Name: "David Chen", Role: "3D Vizualizator", Image: "https://picsum.photos/seed/t3/400/400"},
		{Name: "Elena Petrova", Role: "Loyiha menejeri", Image: "https://picsum.photos/seed/t4/400/400"},
	}
}

// CarouselMembers returns the team twice in a row so the scrolling strip can loop
// by translating exactly half its width.
func CarouselMembers() []TeamMember {
	members := TeamMembers()
	return append(members, members...)
}

func FAQItems() []FAQItem {
	return []FAQItem{
		{Question: "Dizayn loyihasi qancha vaqt oladi?", Answer: "O'rtacha loyiha 4 haftadan 12 haftagacha davom etadi, bu loyihaning murakkabligiga bog'liq."},
		{Question: "Narxlar qanday belgilanadi?", Answer: "Narxlar kvadrat metrga qarab yoki loyihaning umumiy murakkabligidan kelib chiqib individual hisoblanadi."},
		{Question: "Masofaviy ishlash imkoniyati bormi?", Answer: "Ha, biz dunyoning istalgan nuqtasidan onlayn konsultatsiya va dizayn xizmatlarini taqdim etamiz."},
		{Question: "Mualliflik nazorati nima?", Answer: "Bu dizaynerning qurilish jarayonida loyihaga to'liq mosligini tekshirib borish xizmatidir."},
	}
}

func AboutStats() []Stat {
	return []Stat{
		{Value: "150+", Label: "Muvaffaqiyatli loyihalar"},
		{Value: "12", Label: "Xalqaro mukofotlar"},
	}
}

func Contact() StudioContact {
	return StudioContact{
		Phone:   "+998 90 123 45 67",
		Email:   "info@luxestudio.uz",
		Address: "Toshkent sh., Amir Temur ko'chasi, 108",
	}
}
