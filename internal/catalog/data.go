package catalog

const imageBase = "https://images.pexels.com/photos/"

var categories = []RoomCategory{
	{ID: "deluxe", Name: "Deluxe Rooms", Description: "Elegant comfort with modern amenities"},
	{ID: "suite", Name: "Luxury Suites", Description: "Spacious elegance with separate living areas"},
	{ID: "presidential", Name: "Presidential Collection", Description: "The ultimate in luxury and exclusivity"},
}

var rooms = []Room{
	{
		ID:            1,
		Category:      "deluxe",
		Name:          "Deluxe City View",
		Price:         350,
		OriginalPrice: 450,
		Image:         imageBase + "271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
		Beds:          1,
		Guests:        2,
		Size:          "35 sqm",
		Amenities:     []string{"City View", "King Bed", "Marble Bathroom", "Minibar", "Wi-Fi", "Room Service"},
		Description:   "Experience urban luxury with stunning city views from your private sanctuary.",
		Rating:        4.7,
		Reviews:       189,
	},
	{
		ID:            2,
		Category:      "deluxe",
		Name:          "Deluxe Garden View",
		Price:         380,
		OriginalPrice: 480,
		Image:         imageBase + "279746/pexels-photo-279746.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
		Beds:          1,
		Guests:        2,
		Size:          "38 sqm",
		Amenities:     []string{"Garden View", "King Bed", "Spa Bathroom", "Balcony", "Premium Wi-Fi", "Turndown Service"},
		Description:   "Relax in tranquil surroundings with beautiful garden views and premium amenities.",
		Rating:        4.8,
		Reviews:       156,
	},
	{
		ID:            3,
		Category:      "suite",
		Name:          "Executive Suite",
		Price:         650,
		OriginalPrice: 800,
		Image:         imageBase + "1457842/pexels-photo-1457842.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
		Beds:          1,
		Guests:        3,
		Size:          "65 sqm",
		Amenities:     []string{"Separate Living Area", "King Bed", "Executive Lounge Access", "Butler Service", "Premium Wi-Fi", "Complimentary Breakfast"},
		Description:   "Perfect for business travelers seeking luxury and convenience.",
		Rating:        4.9,
		Reviews:       98,
	},
	{
		ID:            4,
		Category:      "suite",
		Name:          "Ocean View Suite",
		Price:         750,
		OriginalPrice: 950,
		Image:         imageBase + "271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
		Beds:          1,
		Guests:        3,
		Size:          "70 sqm",
		Amenities:     []string{"Ocean View", "King Bed", "Private Balcony", "Jacuzzi", "Butler Service", "Champagne Welcome"},
		Description:   "Wake up to breathtaking ocean views in this luxurious suite.",
		Rating:        5.0,
		Reviews:       67,
	},
	{
		ID:            5,
		Category:      "presidential",
		Name:          "Presidential Penthouse",
		Price:         1200,
		OriginalPrice: 1500,
		Image:         imageBase + "1457842/pexels-photo-1457842.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
		Beds:          2,
		Guests:        4,
		Size:          "120 sqm",
		Amenities:     []string{"Panoramic Views", "Master Suite", "Private Terrace", "Personal Butler", "Limousine Service", "Private Chef Available"},
		Description:   "The pinnacle of luxury with unparalleled service and amenities.",
		Rating:        5.0,
		Reviews:       23,
	},
}

var amenities = []Amenity{
	{"High-Speed Wi-Fi", "Complimentary ultra-fast internet throughout the property"},
	{"Valet Parking", "Complimentary valet parking and luxury car service"},
	{"Fine Dining", "Michelin-starred restaurants and 24/7 room service"},
	{"Infinity Pool", "Rooftop infinity pool with panoramic city views"},
	{"Fitness Center", "State-of-the-art gym with personal trainers"},
	{"Luxury Spa", "Full-service spa with premium treatments"},
	{"Business Center", "Fully equipped business center and meeting rooms"},
	{"24/7 Security", "Round-the-clock security and concierge service"},
	{"Event Spaces", "Elegant ballrooms and private event venues"},
	{"Entertainment", "Premium entertainment systems and live shows"},
	{"Airport Transfer", "Complimentary luxury airport transfers"},
	{"Concierge Services", "Personal concierge for all your needs"},
}

var testimonials = []Testimonial{
	{
		ID:       1,
		Name:     "Sarah Johnson",
		Location: "New York, USA",
		Avatar:   imageBase + "1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Rating:   5,
		Review:   "Absolutely phenomenal experience! The attention to detail is extraordinary. From the moment we arrived, every staff member went above and beyond to ensure our stay was perfect. The suite was breathtaking with stunning ocean views.",
		StayType: "Honeymoon Suite",
		Date:     "December 2023",
	},
	{
		ID:       2,
		Name:     "Michael Chen",
		Location: "Singapore",
		Avatar:   imageBase + "1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Rating:   5,
		Review:   "Business travel has never been this luxurious. The business center was impeccable, and the concierge service helped arrange all my meetings seamlessly. I'll definitely be staying here on future trips.",
		StayType: "Business Trip",
		Date:     "January 2024",
	},
	{
		ID:       3,
		Name:     "Emma Rodriguez",
		Location: "Madrid, Spain",
		Avatar:   imageBase + "1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Rating:   5,
		Review:   "The spa services were divine! The massage was the best I've ever had, and the wellness programs were exactly what I needed. The staff remembered my name and preferences throughout my stay.",
		StayType: "Wellness Retreat",
		Date:     "November 2023",
	},
	{
		ID:       4,
		Name:     "David Thompson",
		Location: "London, UK",
		Avatar:   imageBase + "1212984/pexels-photo-1212984.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Rating:   5,
		Review:   "Our family vacation was made magical by the exceptional service. The kids loved the pool, and the adults enjoyed the fine dining. Every detail was perfect, from the welcome amenities to the farewell gifts.",
		StayType: "Family Vacation",
		Date:     "August 2023",
	},
}
