// internal/app/catalogue/data.go
package catalogue

import "github.com/empoderata/academy/internal/domain/models"

// learnerships is the accredited learnership catalogue in publication order.
var learnerships = []models.Programme{
	{
		ID:       "contact-centre",
		Name:     "Contact Centre Support",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      99687,
		SETA:        "Services SETA",
		Credits:     285,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Category B)",

		ShortDescription: "A comprehensive qualification designed to train high-level support staff in managing complex customer interactions and centre operations.",
		LongDescription:  "This NQF Level 5 qualification focuses on equipping learners with the strategic, analytical, and managerial skills necessary to excel in a modern contact centre environment. The curriculum covers everything from advanced communication strategies and quality assurance to regulatory compliance and effective team leadership, ensuring graduates can drive measurable performance improvements.",
		KeyModules: []string{
			"Contact Centre Operations Management",
			"Customer Relationship Management (CRM) Strategy",
			"Compliance and Regulatory Frameworks",
			"Team Leadership and Coaching",
			"Data Analysis and Reporting",
		},
		WhoShouldAttend: "Individuals currently working as supervisors, team leaders, or those transitioning into management within a contact centre environment.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3b82f6/ffffff?text=Contact+Centre",
	},
	{
		ID:       "supply-chain-practitioner",
		Name:     "Supply Chain Practitioner",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      110942,
		SETA:        "TETA",
		Credits:     180,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Priority Element)",

		ShortDescription: "An NQF Level 5 qualification focusing on the practical application of supply chain planning, procurement, and logistics management principles.",
		LongDescription:  "This program is designed to create highly capable supply chain specialists who can implement effective management systems across transportation, warehousing, and inventory control. It emphasizes global best practices and local regulatory compliance required for efficient South African operations, giving a direct competitive advantage.",
		KeyModules: []string{
			"Logistics and Transport Management",
			"Procurement and Sourcing Strategy",
			"Inventory and Warehouse Control",
			"Supply Chain Technology and Digitization",
			"Risk Management in Supply Chain",
		},
		WhoShouldAttend: "Employees involved in logistics, purchasing, operations planning, or those aiming for managerial roles in transport and supply chain divisions.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3b82f6/ffffff?text=Supply+Chain",
	},
	{
		ID:       "freight-handler",
		Name:     "Freight Handler",
		Category: models.CategoryLearnership,

		NQFLevel:    3,
		SAQAID:      96396,
		SETA:        "TETA",
		Credits:     122,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Entry-Level)",

		ShortDescription: "A foundational NQF Level 3 qualification covering the safe and efficient handling, packing, and dispatching of goods in a logistics environment.",
		LongDescription:  "Crucial for minimizing operational risk, this qualification provides learners with essential knowledge in load securement, regulatory documentation, equipment usage (including forklifts), and safety protocols. It ensures compliance with transportation laws and results in immediate competency improvement for warehouse and yard staff.",
		KeyModules: []string{
			"Warehouse and Inventory Procedures",
			"Safety and Health in Freight Operations",
			"Load Planning and Securing Techniques",
			"Dangerous Goods Handling (Basic)",
			"Basic Freight Documentation",
		},
		WhoShouldAttend: "Unemployed youth (18.1), warehouse operatives, or new employees starting in entry-level logistics, transport, or storage roles.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3349df/ffffff?text=Freight+Handling",
	},
	{
		ID:       "insurance-underwriter",
		Name:     "Insurance Agent / Underwriter",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      91784,
		SETA:        "INSETA",
		Credits:     156,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Priority Element)",

		ShortDescription: "An NQF Level 5 qualification providing the core legal, financial, and analytical skills required to assess risk and underwrite insurance policies effectively.",
		LongDescription:  "This learnership covers advanced principles of short-term and long-term insurance, focusing heavily on regulatory compliance (FAIS, FICA) and risk pricing models. Graduates gain competency in managing client portfolios, negotiating premiums, and ensuring the profitability and stability of the underwriting function.",
		KeyModules: []string{
			"Insurance Law and Regulatory Compliance",
			"Risk Analysis and Pricing Models",
			"Underwriting Principles and Practices",
			"Financial Planning and Reporting",
			"Client Portfolio Management",
		},
		WhoShouldAttend: "Individuals working in sales support, client advisory roles, or directly involved in the risk assessment and policy creation process.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3b82f6/ffffff?text=Insurance+Risk",
	},
	{
		ID:       "project-manager",
		Name:     "Project Manager",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      101869,
		SETA:        "Services SETA",
		Credits:     240,
		Duration:    "18 Months",
		PriceKey:    models.Price18Months,
		BBBEEImpact: "Skills Development (Priority Element)",

		ShortDescription: "A comprehensive NQF Level 5 qualification providing formal methodologies and tools necessary to manage complex projects across various industries.",
		LongDescription:  "This 18-month program delivers the theoretical and practical skills required to initiate, plan, execute, control, and close projects successfully. It aligns with global project management standards and includes critical learning areas like scope definition, stakeholder management, budgeting, and risk mitigation.",
		KeyModules: []string{
			"Project Initiation and Scoping",
			"Risk and Quality Management",
			"Stakeholder Communication",
			"Project Scheduling and Budgeting",
			"Team Leadership and Execution",
		},
		WhoShouldAttend: "New or existing employees who are expected to manage projects, project teams, or departmental initiatives.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3349df/ffffff?text=Project+Mgt",
	},
	{
		ID:       "insurance-claims-assessor",
		Name:     "Insurance Claims Administrator / Assessor",
		Category: models.CategoryLearnership,

		NQFLevel:    4,
		SAQAID:      99668,
		SETA:        "INSETA",
		Credits:     131,
		Duration:    "24 Months",
		PriceKey:    models.Price24Months,
		BBBEEImpact: "Skills Development (Category B)",

		ShortDescription: "An NQF Level 4 qualification focused on the accurate and ethical processing and adjudication of insurance claims.",
		LongDescription:  "Designed for claims departments, this qualification covers the full claims lifecycle, from first notification of loss (FNOL) to final settlement. It emphasizes client empathy, investigative techniques, fraud prevention, and strict adherence to industry regulations, reducing liability and improving customer satisfaction.",
		KeyModules: []string{
			"Claims Lifecycle Management",
			"Policy Interpretation",
			"Fraud Detection and Prevention",
			"Customer Communication and Service",
			"Dispute Resolution and Ethics",
		},
		WhoShouldAttend: "Individuals starting their career in claims administration, processing, or assessment roles within the insurance industry.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3b82f6/ffffff?text=Claims+Admin",
	},
	{
		ID:       "truck-driver",
		Name:     "Truck Driver",
		Category: models.CategoryLearnership,

		NQFLevel:    3,
		SAQAID:      93793,
		SETA:        "TETA",
		Credits:     130,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Entry-Level)",

		ShortDescription: "A vocational NQF Level 3 qualification providing the theoretical knowledge and practical driving skills for heavy commercial vehicles.",
		LongDescription:  "This learnership goes beyond just obtaining a license. It focuses on route planning, vehicle maintenance checks, fatigue management, defensive driving techniques, and compliance with all cross-border and local road regulations, ensuring the safety of the driver, cargo, and public.",
		KeyModules: []string{
			"Vehicle Safety and Maintenance",
			"Advanced Driving Techniques",
			"Regulatory Compliance and Permits",
			"Load Management and Safety",
			"Customer Service and Delivery Protocol",
		},
		WhoShouldAttend: "Unemployed individuals seeking to enter the transportation sector or current drivers needing formal certification and upskilling in regulatory compliance.",

		Format:   "Blended (Practical & Theory)",
		ImageURL: "https://placehold.co/800x600/3349df/ffffff?text=Truck+Driver",
	},
	{
		ID:       "road-transport-manager",
		Name:     "Road Transport Manager",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      96371,
		SETA:        "TETA",
		Credits:     205,
		Duration:    "24 Months",
		PriceKey:    models.Price24Months,
		BBBEEImpact: "Skills Development (Priority Element)",

		ShortDescription: "An advanced NQF Level 5 qualification focused on strategic planning, resource allocation, and regulatory management within the road freight industry.",
		LongDescription:  "This two-year program prepares managers to oversee transport operations, manage budgets, optimize routes, handle complex regulatory requirements, and ensure staff compliance with safety and licensing laws. It is essential for reducing operational costs and maintaining a legal, competitive fleet.",
		KeyModules: []string{
			"Fleet Management Strategy",
			"Financial Management and Budgeting",
			"Transport Legislation and Compliance",
			"Operations Scheduling and Optimization",
			"Human Resource Management in Transport",
		},
		WhoShouldAttend: "Existing supervisors or staff identified for management progression within the transport and logistics department.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3b82f6/ffffff?text=Transport+Manager",
	},
	{
		ID:       "clearing-forwarding-agent",
		Name:     "Clearing & Forwarding Agent",
		Category: models.CategoryLearnership,

		NQFLevel:    5,
		SAQAID:      96368,
		SETA:        "TETA",
		Credits:     120,
		Duration:    "12 Months",
		PriceKey:    models.Price12Months,
		BBBEEImpact: "Skills Development (Priority Element)",

		ShortDescription: "An NQF Level 5 qualification providing expertise in customs documentation, tariffs, international trade law, and complex logistics processes.",
		LongDescription:  "This qualification is vital for companies involved in importing and exporting. Learners master the complexities of customs regulations, tariff classification, border control procedures, and freight movement, enabling the company to avoid penalties and streamline international trade operations.",
		KeyModules: []string{
			"International Trade Procedures and Law",
			"Customs Documentation and Tariff Codes",
			"Incoterms and Trade Agreements",
			"Freight Logistics and Supply Chain Coordination",
			"Risk Management in International Freight",
		},
		WhoShouldAttend: "Individuals working in international trade, shipping, logistics, or roles requiring cross-border documentation knowledge.",

		Format:   "Blended (Online & Workplace)",
		ImageURL: "https://placehold.co/800x600/3349df/ffffff?text=Clearing+Agent",
	},
}
