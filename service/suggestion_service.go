package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/generative-ai-go/genai"
)

// SuggestionService produces predictive-text suggestions for wizard
// fields. The dominant path is a deterministic pool of canned paragraph
// templates, shuffled per call; when a Gemini client is configured the
// service asks the model first and falls back to the templates on any
// failure.
type SuggestionService struct {
	gemini *genai.Client
	rand   *rand.Rand
}

// SuggestionServiceOption is a functional option for SuggestionService
type SuggestionServiceOption func(*SuggestionService)

// SuggestionWithGeminiClient enables the model-backed path.
func SuggestionWithGeminiClient(client *genai.Client) SuggestionServiceOption {
	return func(s *SuggestionService) {
		s.gemini = client
	}
}

// SuggestionWithRand sets the shuffle source. Tests pass a seeded source.
func SuggestionWithRand(r *rand.Rand) SuggestionServiceOption {
	return func(s *SuggestionService) {
		s.rand = r
	}
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(opts ...SuggestionServiceOption) *SuggestionService {
	s := &SuggestionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const maxSuggestions = 6

// textContext summarizes the current field text to steer pool selection.
type textContext struct {
	companyName  string
	industry     string
	hasFinancial bool
	hasMarket    bool
	hasTech      bool
	hasGrowth    bool
	textLength   int
}

var (
	financialTerms = []string{"revenue", "profit", "cost", "investment", "funding", "roi", "margin", "cash", "budget"}
	marketTerms    = []string{"market", "customer", "target", "segment", "competition", "audience", "demographic", "niche"}
	techTerms      = []string{"technology", "platform", "software", "digital", "automation", "ai", "cloud", "data"}
	growthTerms    = []string{"scale", "expand", "growth", "development", "innovation", "strategy"}
)

func analyzeContext(currentText, companyName, industry string) textContext {
	words := strings.Fields(strings.ToLower(currentText))
	has := func(terms []string) bool {
		for _, w := range words {
			for _, t := range terms {
				if w == t {
					return true
				}
			}
		}
		return false
	}
	return textContext{
		companyName:  companyName,
		industry:     industry,
		hasFinancial: has(financialTerms),
		hasMarket:    has(marketTerms),
		hasTech:      has(techTerms),
		hasGrowth:    has(growthTerms),
		textLength:   len(currentText),
	}
}

// Suggest returns up to six suggested continuations for a wizard field.
func (s *SuggestionService) Suggest(ctx context.Context, field, currentText, companyName, industry string) []string {
	if s.gemini != nil {
		if suggestions, err := s.suggestWithGemini(ctx, field, currentText, companyName, industry); err == nil && len(suggestions) > 0 {
			return suggestions
		} else if err != nil {
			log.Printf("Gemini suggestion failed, falling back to templates: %v", err)
		}
	}

	tc := analyzeContext(currentText, companyName, industry)

	var pool []string
	switch {
	case strings.TrimSpace(currentText) == "":
		pool = starterSuggestions(field, tc)
	case len(currentText) < 200:
		pool = continuationSuggestions(field, tc)
	default:
		pool = enhancementSuggestions(field, tc)
	}
	pool = append(pool, variationSuggestions(tc)...)

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	shuffle := s.rand
	if shuffle == nil {
		shuffle = rand.New(rand.NewSource(rand.Int63()))
	}
	shuffle.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > maxSuggestions {
		shuffled = shuffled[:maxSuggestions]
	}
	return shuffled
}

func (s *SuggestionService) suggestWithGemini(ctx context.Context, field, currentText, companyName, industry string) ([]string, error) {
	model := s.gemini.GenerativeModel("gemini-1.5-flash")
	prompt := fmt.Sprintf(
		"Suggest up to %d single-paragraph continuations for the %q section of a business plan. Company: %q. Industry: %q. Current text: %q. Return one suggestion per line, no numbering.",
		maxSuggestions, humanizeField(field), companyName, industry, currentText,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	var suggestions []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text, ok := part.(genai.Text)
			if !ok {
				continue
			}
			for _, line := range strings.Split(string(text), "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					suggestions = append(suggestions, line)
				}
			}
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// humanizeField turns a camelCase field key into readable words,
// e.g. "salesForecast" -> "sales forecast".
func humanizeField(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func companyRef(tc textContext) string {
	if tc.companyName != "" {
		return tc.companyName
	}
	return "Our company"
}

func industryRef(tc textContext) string {
	if tc.industry != "" {
		return tc.industry
	}
	return "technology"
}

func starterSuggestions(field string, tc textContext) []string {
	company := companyRef(tc)
	industry := industryRef(tc)

	switch field {
	case "companyName":
		return []string{
			fmt.Sprintf("%s represents a revolutionary approach to %s, combining cutting-edge innovation with proven market strategies to deliver exceptional value to our customers while maintaining sustainable growth and operational excellence.", company, industry),
			fmt.Sprintf("Founded on the principles of innovation and customer-centricity, %s has emerged as a pioneering force in the %s industry, leveraging advanced technologies and strategic partnerships to create transformative solutions that address complex market challenges.", company, industry),
			fmt.Sprintf("%s stands at the forefront of %s, where our team of experienced professionals works tirelessly to develop comprehensive solutions that not only meet current market demands but anticipate future trends and opportunities.", company, industry),
		}
	case "sector":
		return []string{
			fmt.Sprintf("The %s sector presents unprecedented opportunities for growth and innovation, driven by rapidly evolving consumer demands, technological breakthroughs, and shifting market dynamics that create new possibilities for disruptive business models and strategic partnerships.", industry),
			fmt.Sprintf("Operating within the dynamic %s landscape, we've identified significant gaps in the market where traditional approaches fall short, creating substantial opportunities for innovative companies to establish strong competitive positions through differentiated value propositions.", industry),
			fmt.Sprintf("Our analysis of the %s sector reveals emerging trends including digital transformation, sustainability initiatives, and customer experience optimization, which collectively represent a multi-billion dollar opportunity for forward-thinking organizations.", industry),
		}
	case "productsServices":
		return []string{
			"Our comprehensive suite of products and services has been meticulously designed to address the evolving needs of modern businesses, incorporating advanced technologies, user-centric design principles, and scalable architectures that adapt to changing market conditions and customer requirements.",
			"We offer an integrated ecosystem of innovative solutions that seamlessly combine hardware, software, and service components to deliver unparalleled value to our clients, enabling them to achieve operational efficiency, cost optimization, and sustainable competitive advantages in their respective markets.",
			"Our product portfolio encompasses cutting-edge technologies and proven methodologies that have been refined through extensive market research, customer feedback, and continuous innovation cycles, resulting in solutions that consistently exceed performance expectations and deliver measurable business outcomes.",
		}
	case "purposeValue":
		return []string{
			"Our fundamental purpose centers on transforming how businesses operate in the digital age by providing innovative solutions that bridge the gap between traditional practices and emerging technologies, creating sustainable value for all stakeholders while contributing to positive societal impact.",
			"We exist to empower organizations of all sizes to harness the full potential of modern technology and strategic thinking, enabling them to overcome complex challenges, capitalize on market opportunities, and build resilient business models that thrive in dynamic competitive environments.",
			"Our core mission revolves around democratizing access to advanced business solutions and technological capabilities, ensuring that companies across diverse industries can leverage world-class tools and expertise to accelerate their growth trajectories and achieve long-term success.",
		}
	case "managementTeam":
		return []string{
			"Our leadership team brings together over 150 years of combined experience across multiple industries, including technology, finance, operations, and strategic consulting, with proven track records of building successful companies, leading digital transformations, and delivering exceptional results in competitive markets.",
			"The management team consists of seasoned executives who have previously held senior positions at Fortune 500 companies, successful startups, and leading consulting firms, bringing diverse perspectives, extensive networks, and deep domain expertise to drive strategic decision-making and operational excellence.",
			"Our diverse leadership group combines technical expertise with business acumen, featuring former CTOs, VPs of Sales, Operations Directors, and Strategy Consultants who collectively possess the skills, experience, and vision necessary to navigate complex market dynamics and execute ambitious growth strategies.",
		}
	case "businessDescription":
		return []string{
			fmt.Sprintf("%s is a next-generation %s company that specializes in developing and deploying innovative solutions designed to address critical market inefficiencies and unlock new value creation opportunities for businesses across multiple industry verticals, leveraging advanced analytics, automation, and strategic partnerships.", company, industry),
			fmt.Sprintf("We operate as a comprehensive solutions provider in the %s space, offering an integrated platform that combines proprietary technology, expert consulting services, and strategic advisory capabilities to help organizations optimize their operations, enhance customer experiences, and achieve sustainable competitive advantages.", industry),
			fmt.Sprintf("%s represents a unique convergence of cutting-edge technology and deep industry expertise, focused on creating transformative solutions that enable businesses to adapt to rapidly changing market conditions while maintaining operational efficiency and delivering superior customer value propositions.", company),
		}
	}

	readable := humanizeField(field)
	return []string{
		fmt.Sprintf("In today's rapidly evolving business landscape, %s has positioned itself as a catalyst for transformation within the %s sector, leveraging innovative approaches and strategic thinking to create sustainable competitive advantages while delivering exceptional value to customers and stakeholders.", company, industry),
		fmt.Sprintf("Our comprehensive approach to %s encompasses multiple dimensions of business strategy, operational excellence, and market positioning, ensuring that we maintain leadership positions while adapting to changing market dynamics and emerging opportunities.", readable),
		fmt.Sprintf("Through careful analysis of market trends, customer needs, and competitive landscapes, %s has developed a robust framework for %s that incorporates best practices, innovative methodologies, and proven strategies to achieve sustainable growth and long-term success.", company, readable),
		fmt.Sprintf("The foundation of our %s rests on deep industry knowledge, extensive market research, and strategic partnerships that enable us to deliver comprehensive solutions while maintaining flexibility to adapt to evolving market conditions and customer requirements.", readable),
		fmt.Sprintf("Our strategic approach to %s integrates cutting-edge technologies with time-tested business principles, creating a unique value proposition that addresses both current market needs and anticipates future trends and opportunities in the %s sector.", readable, industry),
	}
}

func continuationSuggestions(field string, tc textContext) []string {
	var out []string
	lower := strings.ToLower(field)

	if tc.hasMarket || strings.Contains(lower, "market") {
		out = append(out,
			"This market positioning creates significant opportunities for strategic partnerships, customer acquisition, and revenue diversification, while our comprehensive market research indicates strong demand for innovative solutions that address current gaps in service delivery and customer experience.",
			"Our extensive market analysis reveals multiple untapped segments with substantial growth potential, supported by favorable demographic trends, regulatory changes, and technological advancements that align perfectly with our core competencies and strategic objectives.",
			"The competitive landscape analysis demonstrates clear differentiation opportunities where our unique value proposition can capture market share through superior customer experience, innovative product features, and strategic pricing models that deliver exceptional value.",
			"Market validation through customer interviews, pilot programs, and industry partnerships confirms strong demand for our solutions, with early adopters reporting significant improvements in operational efficiency, cost reduction, and customer satisfaction metrics.",
		)
	}
	if tc.hasTech || strings.Contains(lower, "technology") || strings.Contains(lower, "platform") {
		out = append(out,
			"Our technology infrastructure is built on scalable, cloud-native architectures that support rapid growth while maintaining security, reliability, and performance standards that exceed industry benchmarks, ensuring seamless user experiences across all touchpoints.",
			"The platform leverages artificial intelligence, machine learning algorithms, and advanced analytics to provide predictive insights, automated decision-making capabilities, and personalized user experiences that adapt to individual preferences and behavioral patterns.",
			"Integration capabilities span multiple protocols, APIs, and data formats, enabling seamless connectivity with existing enterprise systems while providing robust security measures, data encryption, and compliance frameworks that meet industry standards.",
			"Our technical roadmap includes continuous innovation cycles, regular platform updates, and emerging technology adoption strategies that ensure long-term competitiveness while maintaining backward compatibility and system stability.",
		)
	}
	if tc.hasFinancial || strings.Contains(lower, "financial") || strings.Contains(lower, "revenue") {
		out = append(out,
			"Financial projections are based on conservative market assumptions, extensive competitive analysis, and proven business models that have demonstrated success in similar markets, with multiple revenue streams providing stability and growth potential.",
			"Our economic model incorporates detailed cost structures, pricing strategies, and profitability timelines that account for customer acquisition costs, operational expenses, and market development investments while maintaining healthy unit economics.",
			"Revenue diversification strategies include subscription models, transaction fees, premium services, and strategic partnerships that create multiple income streams while reducing dependency on any single revenue source or customer segment.",
			"Investment requirements have been carefully calculated based on operational needs, technology development costs, marketing expenses, and working capital requirements, with clear milestones and performance metrics tied to funding stages.",
		)
	}
	if tc.hasGrowth || strings.Contains(lower, "strategy") || strings.Contains(lower, "growth") {
		out = append(out,
			"Our growth strategy encompasses organic expansion through customer acquisition and retention, strategic partnerships with industry leaders, and selective acquisitions that complement our core capabilities while expanding market reach and technical expertise.",
			"Scalability planning includes operational process optimization, technology infrastructure expansion, team development programs, and strategic resource allocation that supports sustainable growth while maintaining service quality and customer satisfaction.",
			"Market expansion opportunities span geographic regions, industry verticals, and customer segments, with detailed go-to-market strategies, localization requirements, and partnership frameworks that minimize risk while maximizing growth potential.",
			"Success metrics and key performance indicators have been established to track progress across customer acquisition, revenue growth, operational efficiency, and market penetration, with regular review cycles and adjustment mechanisms built into our strategic planning process.",
		)
	}
	if len(out) == 0 {
		out = append(out,
			"This strategic approach ensures sustainable competitive advantages through continuous innovation, customer-centric design principles, and operational excellence that consistently delivers superior value propositions while maintaining flexibility to adapt to changing market conditions.",
			"Implementation strategies incorporate phased rollouts, risk mitigation protocols, and performance monitoring systems that enable rapid iteration and optimization based on real-world feedback and market response data.",
			"Our comprehensive framework includes detailed timelines, resource allocation plans, and success metrics that provide clear visibility into progress while maintaining accountability across all functional areas and stakeholder groups.",
			"Success factors include strong leadership commitment, cross-functional collaboration, strategic partner alignment, and continuous learning mechanisms that support both short-term execution and long-term strategic objectives.",
		)
	}
	return out
}

func enhancementSuggestions(field string, tc textContext) []string {
	var out []string
	lower := strings.ToLower(field)
	contains := func(terms ...string) bool {
		for _, t := range terms {
			if strings.Contains(lower, t) {
				return true
			}
		}
		return false
	}

	if !tc.hasFinancial && contains("business", "financial", "funding", "revenue") {
		out = append(out,
			"Furthermore, our comprehensive financial model demonstrates robust unit economics with customer lifetime values significantly exceeding acquisition costs, supported by detailed sensitivity analyses and scenario planning that account for various market conditions and competitive responses.",
			"Key financial performance indicators include monthly recurring revenue growth rates, gross margin expansion, customer churn reduction, and cash flow optimization metrics that collectively demonstrate sustainable business model viability and scalability potential.",
			"Investment allocation strategies prioritize high-impact initiatives across product development, market expansion, and operational scaling, with clear ROI expectations and milestone-based funding releases that minimize risk while maximizing growth opportunities.",
		)
	}
	if !tc.hasMarket && contains("market", "customer", "competitive") {
		out = append(out,
			"Market research validates our assumptions through comprehensive customer surveys, competitive intelligence gathering, and industry expert interviews that confirm significant unmet demand and favorable competitive positioning for our differentiated solutions.",
			"Customer segmentation analysis reveals multiple high-value target markets with distinct needs, preferences, and willingness-to-pay characteristics that enable tailored value propositions and optimized go-to-market strategies for each segment.",
			"Competitive differentiation strategies leverage our unique strengths in technology innovation, customer experience design, and strategic partnerships to create sustainable advantages that are difficult for competitors to replicate.",
		)
	}
	if !tc.hasTech && contains("technology", "platform", "solution") {
		out = append(out,
			"Technology implementation follows industry best practices for security, scalability, and performance optimization, incorporating DevOps methodologies, continuous integration pipelines, and automated testing frameworks that ensure reliable product delivery.",
			"Our technical architecture supports multi-tenancy, API-first design principles, and microservices patterns that enable rapid feature development, seamless integrations, and flexible deployment options across cloud and on-premise environments.",
			"Innovation roadmaps include emerging technology evaluation, prototype development, and strategic technology partnerships that ensure our solutions remain at the forefront of industry advancement while meeting evolving customer requirements.",
		)
	}

	out = append(out,
		"Strategic partnerships with industry leaders, technology providers, and distribution channels create synergistic opportunities for market expansion, capability enhancement, and customer value creation while reducing competitive threats and market entry barriers.",
		"Risk management frameworks address operational, market, financial, and technology risks through comprehensive mitigation strategies, contingency planning, and insurance coverage that protect business continuity and stakeholder interests.",
		"Performance monitoring systems track key success metrics across customer satisfaction, operational efficiency, financial performance, and market position, enabling data-driven decision making and continuous optimization of business strategies.",
		"Organizational development initiatives focus on talent acquisition, skills development, culture building, and leadership succession planning that support sustainable growth while maintaining high-performance standards and employee engagement.",
		"Quality assurance processes encompass product development, service delivery, and customer experience management through systematic testing, feedback collection, and continuous improvement methodologies that ensure consistent excellence.",
		"Sustainability initiatives integrate environmental responsibility, social impact, and governance best practices into business operations, creating long-term value for stakeholders while contributing to positive societal outcomes.",
		"Innovation processes include idea generation, concept validation, prototype development, and market testing methodologies that systematically identify and develop new opportunities while managing development risks and resource allocation.",
	)
	return out
}

func variationSuggestions(tc textContext) []string {
	company := companyRef(tc)
	return []string{
		fmt.Sprintf("%s leverages advanced methodologies and proven frameworks to deliver exceptional results that consistently exceed stakeholder expectations while maintaining operational efficiency and sustainable growth trajectories across multiple market segments and geographic regions.", company),
		"Through strategic analysis and comprehensive market research, we have identified significant opportunities for value creation that align with emerging industry trends, customer preferences, and technological capabilities, positioning us for accelerated growth and market leadership.",
		"Our innovative approach combines traditional business principles with cutting-edge technologies and creative problem-solving methodologies to develop solutions that address complex challenges while creating sustainable competitive advantages in dynamic market environments.",
		"Implementation strategies incorporate best practices from multiple industries, academic research, and expert consultation to ensure optimal outcomes while minimizing risks and maximizing return on investment across all business functions and strategic initiatives.",
	}
}
