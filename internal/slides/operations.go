package slides

import (
	"github.com/alnah/go-pitchdeck/internal/content"
	"github.com/alnah/go-pitchdeck/internal/layout"
)

// Agile describes the team, its ceremonies and its tooling.
func Agile(env Env) *layout.Slide {
	s := standard(env, "agile", "Agile Governance", "SCRUM Framework & Team Roles.")
	addCards(s, env,
		card{layout.At(0.5, contentTop, 4, 1.5), "The Squad",
			"- Product Owner (Alicia)\n- Scrum Master\n- Lead Data Scientist\n- DevOps Engineer"},
		card{layout.At(4.7, contentTop, 4, 1.5), "Ceremonies",
			"- Daily Stand-up (15min)\n- Sprint Planning (3 weeks)\n- Review & Retro"},
		card{layout.At(8.9, contentTop, 4, 1.5), "Tools",
			"- Jira (Backlog)\n- GitHub (Version Control)\n- Azure DevOps (CI/CD)\n- MLflow (Tracking)"},
	)
	return s
}

// Compliance details the data register and the ethics framework.
func Compliance(env Env) *layout.Slide {
	s := standard(env, "compliance", "Compliance & Ethics", "Trust is our currency.")
	addCards(s, env,
		card{layout.At(0.5, contentTop, 5.5, 2), "CNIL Register (RGPD)",
			"- Purpose: AI Personalization\n- Data: Photos, Size, Purchase History\n" +
				"- Retention: 3 years active\n- Rights: Access, Rectification, Erasure"},
		card{layout.At(6.5, contentTop, 5.5, 2), "Ethical AI Framework",
			"- Fairness: Balanced datasets (Ethnicity/Body Type)\n- Transparency: Explainable AI (XAI)\n" +
				"- Green AI: Optimized inference for low carbon footprint"},
	)
	return s
}

// Architecture overlays the stack cards on the cloud diagram.
func Architecture(env Env) *layout.Slide {
	s := standard(env, "architecture", "Scalable Cloud Architecture", "Powered by Microsoft Azure.")
	s.Add(layout.Picture{
		Path: env.Assets.Architecture,
		Slot: layout.At(4, 2, 5.8, 5),
		Fit:  layout.FitHeight,
	})
	addCards(s, env,
		card{layout.At(0.5, contentTop, 3, 1.2), "Front-End", "React Native\n(iOS/Android)"},
		card{layout.At(0.5, 4.5, 3, 1.2), "API Gateway", "Azure App Service\n(Python/FastAPI)"},
		card{layout.At(9.8, contentTop, 3, 1.2), "AI Engine", content.Escape("Azure Cognitive Services\n+ Custom PyTorch Models")},
		card{layout.At(9.8, 4.5, 3, 1.2), "Data Lake", "Azure Blob Storage\n(Images & Metadata)"},
	)
	return s
}
