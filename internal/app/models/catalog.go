package models

// Static site catalog: institutional identity, navigation, faculties,
// team roster and admission checklist. Pure data, no behavior beyond
// faculty lookup.

const (
	UniversityName = "Université Polytechnique de Goma"
	UniversityAbbr = "UPG"
	ContactPhone   = "+243973380118"
	ContactEmail   = "info@upgoma.org"
	ContactAddress = "Goma, Quartier Lac Vert Avenue Nyarutsiru Avant entrée Buhimba"

	SocialFacebook = "https://web.facebook.com/upgoma"
	SocialX        = "https://x.com/UP_Goma"
	SocialLinkedIn = "https://www.linkedin.com/company/universit%C3%A9-polytechnique-de-goma"

	// DefaultAuthor is used when a news item is published without one.
	DefaultAuthor = "Direction UPG"
	// DefaultNewsImage is the placeholder shown for items without an image.
	DefaultNewsImage = "https://picsum.photos/id/24/800/600"
)

// NavItem is one entry of the public site navigation.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// TeamMember is one entry of the leadership roster.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	LinkedIn string `json:"linkedin"`
}

// Advantage is one of the highlighted selling points of the university.
type Advantage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NavItems lists the sections of the public site, in display order.
var NavItems = []NavItem{
	{Label: "Accueil", Href: "#home"},
	{Label: "À propos", Href: "#about"},
	{Label: "Actualités", Href: "#news"},
	{Label: "Programme", Href: "#lmd"},
	{Label: "Facultés", Href: "#faculties"},
	{Label: "Équipe", Href: "#team"},
	{Label: "Contact", Href: "#contact"},
}

// Faculties is the full catalog, with each faculty's ordered department list.
var Faculties = []Faculty{
	{
		ID:          "poly",
		Name:        "Polytechnique",
		Description: "Ingénierie civile, électricité, et technologies de pointe pour reconstruire la nation.",
		Departments: []string{"Génie Civil", "Génie Électrique", "Génie Informatique"},
	},
	{
		ID:          "econ",
		Name:        "Sciences Économiques",
		Description: "Analyse des marchés et gestion des ressources dans un contexte globalisé.",
		Departments: []string{"Économie Rurale", "Économie de Développement"},
	},
	{
		ID:          "health",
		Name:        "Santé Publique",
		Description: "Gestion de la santé communautaire et expertise en épidémiologie.",
		Departments: []string{"Gestion des Institutions de Santé", "Épidémiologie"},
	},
	{
		ID:          "manage",
		Name:        "Management",
		Description: "Leadership entrepreneurial et gestion organisationnelle moderne.",
		Departments: []string{"Management des Affaires", "Ressources Humaines"},
	},
	{
		ID:          "dev",
		Name:        "Sciences de Développement",
		Description: "Planification stratégique pour le progrès social et durable.",
		Departments: []string{"Développement Communautaire", "Gestion de Projets"},
	},
	{
		ID:          "agri",
		Name:        "Sciences Agronomiques",
		Description: "Expertise en agriculture moderne et gestion environnementale.",
		Departments: []string{"Phytotechnie", "Zootechnie", "Gestion de l'Environnement"},
	},
}

// Team is the leadership roster shown on the public site.
var Team = []TeamMember{
	{Name: "Jean de Dieu MUTABAZI MUNGUIKO", Role: "Recteur", LinkedIn: "https://www.linkedin.com/search/results/all/?keywords=Jean%20de%20Dieu%20MUTABAZI%20MUNGUIKO"},
	{Name: "André MUSAVULI BALIKWISHA", Role: "Secrétaire Général Académique", LinkedIn: "https://www.linkedin.com/search/results/all/?keywords=André%20MUSAVULI%20BALIKWISHA"},
	{Name: "Claver NDABIJIMANA", Role: "Secrétaire Administratif et Financier", LinkedIn: "https://www.linkedin.com/search/results/all/?keywords=Claver%20NDABIJIMANA"},
	{Name: "Jacques Masuruku", Role: "Informaticien", LinkedIn: "https://www.linkedin.com/in/jacques-mapenzi-masuruku-73266b245/"},
	{Name: "Joel SEBAGENI", Role: "Appariteur", LinkedIn: "https://www.linkedin.com/search/results/all/?keywords=Joel%20SEBAGENI"},
}

// Advantages lists the highlighted strengths of the university.
var Advantages = []Advantage{
	{
		Title:       "Enseignement Moderne",
		Description: "Approche pédagogique innovante centrée sur l'étudiant et la pratique, nous adoptons l'utilisation des outils pédagogiques modernes comme les écran interactifs.",
	},
	{
		Title:       "Bourses d'Excellence",
		Description: "Octroi de bourses d'entrepreuneuriat aux étudiants pour soutenir les Activités Génératrices de Revenus (AGR).",
	},
	{
		Title:       "Internet Haut Débit",
		Description: "Connexion WiFi gratuite sur tout le campus pour faciliter la recherche.",
	},
	{
		Title:       "Frais Réduits",
		Description: "L'excellence académique rendue accessible à toutes les bourses, Les frais académiques sont largement réduits pour faciliter toutes les couches d'accéder à la formation de qualité.",
	},
}

// AdmissionDocuments is the checklist of pieces required for admission.
var AdmissionDocuments = []string{
	"Diplôme d'État ou son équivalent",
	"Bulletin de la 5ème et 6ème année des Humanités",
	"Attestation de naissance et de bonne vie et mœurs",
	"4 Photos passeport récentes",
	"Certificat d'aptitude physique",
}

// FallbackNews is the bundled feed shown when the record store is
// unreachable, erroring or empty. Order is fixed.
var FallbackNews = []NewsItem{
	{
		ID:       "1",
		Title:    "Ouverture des inscriptions 2025-2026",
		Date:     "15 Oct 2025",
		Category: CategoryAnnouncement,
		Author:   "Admin UPG",
		Content:  "L'UPG annonce l'ouverture officielle du portail d'inscription pour l'année académique 2025-2026. Tous les bacheliers sont invités à postuler dès maintenant.",
		Image:    "https://picsum.photos/id/119/800/600",
	},
	{
		ID:       "2",
		Title:    "Conférence sur l'Intelligence Artificielle",
		Date:     "10 Nov 2025",
		Category: CategoryEvent,
		Author:   "Admin UPG",
		Content:  "Une journée d'échange sur l'impact de l'IA dans le génie civil et l'agronomie se tiendra dans l'amphithéâtre de l'UPG.",
		Image:    "https://picsum.photos/id/201/800/600",
	},
	{
		ID:       "3",
		Title:    "Nouveau Laboratoire de Polytechnique",
		Date:     "05 Dec 2025",
		Category: CategoryNews,
		Author:   "Admin UPG",
		Content:  "L'UPG s'équipe de nouveaux matériels de pointe pour son département de Génie Électrique, renforçant sa position de leader technologique.",
		Image:    "https://picsum.photos/id/2/800/600",
	},
}

// FacultyByName returns the catalog faculty with the given display name.
func FacultyByName(name string) (*Faculty, bool) {
	for i := range Faculties {
		if Faculties[i].Name == name {
			return &Faculties[i], true
		}
	}
	return nil, false
}

// FacultyByID returns the catalog faculty with the given identifier.
func FacultyByID(id string) (*Faculty, bool) {
	for i := range Faculties {
		if Faculties[i].ID == id {
			return &Faculties[i], true
		}
	}
	return nil, false
}
