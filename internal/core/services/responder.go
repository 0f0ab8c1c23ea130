package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/ragchat-cli/internal/core/domain"
)

// responseRule pairs a query predicate with a reply template. Rules
// are evaluated in order and the first match wins, so conversational
// rules always pre-empt topic rules, and specific topics pre-empt the
// general fallback.
type responseRule struct {
	matches func(queryLower string) bool
	body    string
	// withCitations is appended after the body when the turn produced
	// at least one citation. Empty for conversational rules, which
	// never cite.
	withCitations string
}

func anyOf(substrings ...string) func(string) bool {
	return func(q string) bool {
		for _, s := range substrings {
			if strings.Contains(q, s) {
				return true
			}
		}
		return false
	}
}

var responseRules = []responseRule{
	// Small talk.
	{
		matches: func(q string) bool { return greetingPattern.MatchString(q) },
		body:    "Hello! I'm your RAG (Retrieval-Augmented Generation) chatbot assistant. I'm here to help answer your questions using information from my knowledge base. Feel free to ask me anything!",
	},
	{
		matches: func(q string) bool { return wellBeingPattern.MatchString(q) },
		body:    "I'm doing great, thank you for asking! I'm ready to help you find information from my document knowledge base. What would you like to know about?",
	},
	{
		matches: func(q string) bool { return identityPattern.MatchString(q) },
		body:    "I'm a RAG Chatbot Assistant! I'm designed to help you find information by retrieving relevant documents from my knowledge base and providing answers with citations. You can ask me questions about any topic, and I'll do my best to provide helpful answers backed by source documents when available.",
	},
	{
		matches: func(q string) bool { return capabilityPattern.MatchString(q) },
		body: "I'm a Retrieval-Augmented Generation (RAG) chatbot. My purpose is to:\n\n" +
			"- Answer your questions by searching through my knowledge base\n" +
			"- Provide accurate information with document citations when available\n" +
			"- Help you understand various topics and concepts\n" +
			"- Show you the source documents I reference so you can verify the information\n\n" +
			"Feel free to ask me about anything! I'll do my best to help.",
	},
	{
		matches: func(q string) bool { return gratitudePattern.MatchString(q) },
		body:    "You're welcome! I'm glad I could help. Feel free to ask me anything else you'd like to know!",
	},
	{
		matches: func(q string) bool { return farewellPattern.MatchString(q) },
		body:    "Goodbye! Feel free to come back anytime if you have more questions. Have a great day!",
	},

	// Topic replies. The react rule excludes compound terms handled by
	// later rules so "react router" does not short-circuit here.
	{
		matches: func(q string) bool {
			return strings.Contains(q, "react") &&
				!strings.Contains(q, "react router") &&
				!strings.Contains(q, "react query") &&
				!strings.Contains(q, "react hook form") &&
				!strings.Contains(q, "react testing")
		},
		body:          "Based on the React Best Practices Guide, React is a powerful library for building user interfaces. The key principles include using functional components with hooks, following the Rules of Hooks, and managing state effectively.",
		withCitations: "See the citations below for more details.",
	},
	{
		matches:       anyOf("typescript"),
		body:          "TypeScript enhances JavaScript with static typing. It helps catch errors at compile time and improves code maintainability. Interfaces and generics are powerful features that enable type-safe code.",
		withCitations: "Refer to the sources for comprehensive information.",
	},
	{
		matches:       anyOf("tailwind", "shadcn", "mui", "material ui", "ant design", "bootstrap", "styled-components", "css modules"),
		body:          "There are many excellent UI and styling solutions for React. Tailwind CSS offers utility-first styling, ShadCN UI provides accessible components, Material UI follows Material Design, Ant Design offers enterprise components, Bootstrap provides quick prototyping, Styled-Components enables CSS-in-JS, and CSS Modules provide scoped styling.",
		withCitations: "Check the citations for detailed information about these libraries.",
	},
	{
		matches: func(q string) bool {
			return anyOf("redux", "zustand", "mobx", "recoil")(q) || strings.Contains(q, "state management")
		},
		body:          "State management solutions help manage application state effectively. Redux Toolkit simplifies Redux with less boilerplate, Zustand provides minimal state management, MobX uses observable patterns, and Recoil offers atomic state management.",
		withCitations: "See the citations for detailed comparisons and usage.",
	},
	{
		matches: func(q string) bool {
			return anyOf("react hook form", "hook form", "formik", "zod", "yup")(q) ||
				(strings.Contains(q, "form validation") && !strings.Contains(q, "native"))
		},
		body:          "Form handling and validation libraries simplify building robust forms. React Hook Form minimizes re-renders, Formik provides comprehensive form solutions, Zod offers TypeScript-first validation, and Yup provides schema-based validation.",
		withCitations: "Refer to the citations for implementation details.",
	},
	{
		matches: func(q string) bool {
			return anyOf("axios", "react query", "tanstack query", "swr")(q) ||
				(strings.Contains(q, "data fetching") && !strings.Contains(q, "native"))
		},
		body:          "Data fetching libraries help manage API calls and caching. Axios provides interceptors and better error handling, React Query offers powerful caching and synchronization, and SWR provides stale-while-revalidate strategies.",
		withCitations: "Check the citations for best practices.",
	},
	{
		matches: func(q string) bool {
			return anyOf("react router", "next.js", "nextjs")(q) ||
				(strings.Contains(q, "routing") && strings.Contains(q, "react"))
		},
		body:          "Routing solutions enable navigation in React applications. React Router provides declarative routing for SPAs, while Next.js offers file-based routing with SSR and SSG capabilities.",
		withCitations: "See the citations for routing patterns.",
	},
	{
		matches:       anyOf("chart", "recharts", "d3", "visualization", "graph"),
		body:          "Charting libraries help visualize data effectively. Chart.js offers simple, beautiful charts, Recharts provides React-friendly components, and D3.js enables custom visualizations with full control.",
		withCitations: "Refer to the citations for examples.",
	},
	{
		matches: func(q string) bool {
			return anyOf("framer motion", "framer", "gsap")(q) ||
				(strings.Contains(q, "animation") && strings.Contains(q, "react"))
		},
		body:          "Animation libraries bring interfaces to life. Framer Motion offers declarative React animations with gesture support, while GSAP provides professional-grade animations with advanced features.",
		withCitations: "Check the citations for animation techniques.",
	},
	{
		matches:       anyOf("lodash", "moment", "dayjs", "day.js", "uuid"),
		body:          "Utility libraries provide common functions for everyday tasks. Lodash offers data manipulation utilities, Day.js provides lightweight date handling, and UUID generates unique identifiers.",
		withCitations: "See the citations for utility functions.",
	},
	{
		matches: func(q string) bool {
			return anyOf("jest", "react testing library")(q) ||
				(strings.Contains(q, "testing") && strings.Contains(q, "react"))
		},
		body:          "Testing frameworks ensure code quality and reliability. Jest provides test running and mocking capabilities, while React Testing Library focuses on testing user behavior and accessibility.",
		withCitations: "Refer to the citations for testing strategies.",
	},
	{
		matches:       anyOf("rag", "retrieval"),
		body:          "Retrieval-Augmented Generation (RAG) combines document retrieval with language generation. This approach allows AI systems to provide accurate, cited responses by referencing source documents. Citations help users verify information and understand context.",
		withCitations: "See the referenced documents below.",
	},
	{
		matches:       anyOf("performance", "optimization", "code splitting", "memoization", "lazy loading"),
		body:          "Frontend performance optimization is crucial for creating fast, responsive web applications. Key techniques include code splitting to reduce initial bundle size, memoization to prevent unnecessary re-renders, and lazy loading to improve page load times.",
		withCitations: "See the citations for detailed strategies.",
	},
}

const knowledgeBaseSummary = "My knowledge base covers a wide range of frontend technologies including React, TypeScript, UI libraries (Tailwind, ShadCN, MUI, Ant Design, Bootstrap), state management (Redux, Zustand, MobX, Recoil), forms (React Hook Form, Formik, Zod, Yup), data fetching (Axios, React Query, SWR), routing (React Router, Next.js), charts (Chart.js, Recharts, D3.js), animations (Framer Motion, GSAP), utilities (Lodash, Day.js, UUID), testing (Jest, React Testing Library), and more."

const knowledgeBaseOutline = "- UI & Styling: Tailwind CSS, ShadCN UI, Material UI, Ant Design, Bootstrap, Styled-Components, CSS Modules\n" +
	"- State Management: Redux Toolkit, Zustand, MobX, Recoil\n" +
	"- Forms & Validation: React Hook Form, Formik, Zod, Yup\n" +
	"- Data Fetching: Axios, Fetch API, React Query, SWR\n" +
	"- Routing: React Router, Next.js Router\n" +
	"- Charts: Chart.js, Recharts, D3.js\n" +
	"- Animations: Framer Motion, GSAP\n" +
	"- Utilities: Lodash, Day.js, UUID\n" +
	"- Testing: Jest, React Testing Library\n" +
	"- Core: React, TypeScript, RAG architecture, Performance optimization"

// Responder renders the reply text for a resolved turn.
type Responder struct{}

// NewResponder creates a new response generator.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond returns the reply for a query given the citations the
// matcher resolved. The reply is always non-empty.
func (r *Responder) Respond(query string, citations []domain.Citation) string {
	queryLower := strings.TrimSpace(strings.ToLower(query))

	for _, rule := range responseRules {
		if !rule.matches(queryLower) {
			continue
		}
		if rule.withCitations != "" && len(citations) > 0 {
			return rule.body + " " + rule.withCitations
		}
		return rule.body
	}

	return generalResponse(query, citations)
}

// generalResponse covers queries no specific rule recognised. With
// citations it names the referenced documents; without, it outlines
// what the knowledge base covers.
func generalResponse(query string, citations []domain.Citation) string {
	if len(citations) > 0 {
		titles := make([]string, len(citations))
		for i, c := range citations {
			titles[i] = c.DocumentTitle
		}
		return fmt.Sprintf("I found relevant information about %q in my knowledge base. Based on the available documents, here's what I can tell you:\n\n"+
			"The documents I've referenced (%s) contain information that relates to your question. %s\n\n"+
			"Please review the citations below for specific details from the source documents.",
			query, strings.Join(titles, ", "), knowledgeBaseSummary)
	}

	return fmt.Sprintf("I understand you're asking about %q. My knowledge base covers:\n\n%s\n\n"+
		"Try rephrasing your question with specific technology names or keywords, and I'll provide detailed information with citations!",
		query, knowledgeBaseOutline)
}
