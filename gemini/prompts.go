package gemini

import (
	"fmt"

	"github.com/TenKenZero/cronologia/types"
)

// Prompt builders for the text model. Each has an English and a Spanish
// variant selected by the configured language.

func timelinePrompt(language, topic string) string {
	if language == "es" {
		return fmt.Sprintf(`Actúa como un experto en historia y en creación de contenido para redes sociales. Crea una cronología histórica concisa y atractiva para un video corto vertical sobre el tema: "%s".

Genera un objeto JSON con esta estructura exacta, sin texto adicional antes o después:

{"title": "Un título corto y llamativo para el video", "stages": [{"order": 1, "name": "Nombre corto de la etapa (máximo 5 palabras)", "description": "Descripción de la etapa (entre 50 y 80 palabras)"}]}

Incluye exactamente 4 etapas en estricto orden cronológico. La información debe ser históricamente precisa, con un tono divulgativo pero entretenido. Responde SOLO con el JSON válido.`, topic)
	}
	return fmt.Sprintf(`Act as an expert in history and social media content creation. Create a concise, engaging historical timeline for a short vertical video about the topic: "%s".

Generate a JSON object with exactly this structure, with no additional text before or after:

{"title": "A short, catchy title for the video", "stages": [{"order": 1, "name": "Short stage name (maximum 5 words)", "description": "Stage description (between 50 and 80 words)"}]}

Include exactly 4 stages in strict chronological order. The information must be historically accurate, with an informative but entertaining tone. Respond ONLY with the valid JSON.`, topic)
}

func stageScriptPrompt(language, topic string, stage types.Stage, allStages []types.Stage) string {
	ctx := stagesContext(language, allStages)
	if language == "es" {
		return fmt.Sprintf(`Actúa como un guionista profesional de documentales y videos cortos. Escribe el guion de la voz en off para una etapa específica de un video cronológico sobre "%s".

%s
Etapa a narrar: "%s" (número %d). Descripción: "%s".

El guion debe durar 10-15 segundos leído en voz alta (unas 30-45 palabras). Si no es la primera etapa, comienza con una breve transición; si no es la última, termina con un gancho hacia la siguiente. Usa un tono conversacional y lenguaje claro. Responde SOLO con el guion, sin encabezados ni asteriscos, listo para un generador de texto a voz.`,
			topic, ctx, stage.Name, stage.Order, stage.Description)
	}
	return fmt.Sprintf(`Act as a professional scriptwriter for documentaries and short videos. Write the voiceover script for one specific stage of a chronological video about "%s".

%s
Stage to narrate: "%s" (number %d). Description: "%s".

The script must run 10-15 seconds when read aloud (about 30-45 words). If this is not the first stage, open with a brief transition; if it is not the last, end with a hook toward the next one. Use a conversational tone and clear language. Respond ONLY with the script, no headers or asterisks, directly usable by a text-to-speech generator.`,
		topic, ctx, stage.Name, stage.Order, stage.Description)
}

func introScriptPrompt(language, topic string, allStages []types.Stage) string {
	ctx := stagesContext(language, allStages)
	if language == "es" {
		return fmt.Sprintf(`Actúa como un guionista profesional de videos cortos. Escribe el guion de la voz en off para la introducción de un video cronológico sobre "%s".

%s
El guion debe durar 3-5 segundos leído en voz alta. Comienza con una pregunta o un dato sorprendente que genere curiosidad, y termina con una transición hacia la primera etapa. Tono entusiasta y amigable. Responde SOLO con el guion, sin encabezados ni asteriscos.`,
			topic, ctx)
	}
	return fmt.Sprintf(`Act as a professional scriptwriter for short videos. Write the voiceover script for the introduction of a chronological video about "%s".

%s
The script must run 3-5 seconds when read aloud. Open with a question or surprising fact that sparks curiosity, and close with a transition into the first stage. Enthusiastic, friendly tone. Respond ONLY with the script, no headers or asterisks.`,
		topic, ctx)
}

func imagePromptsPrompt(language, topic string, stage types.Stage, allStages []types.Stage, script string) string {
	ctx := stagesContext(language, allStages)
	if language == "es" {
		return fmt.Sprintf(`Actúa como un director de arte experto en imágenes históricas y generación de imágenes con IA. Crea exactamente tres prompts detallados para un generador de imágenes, que describan visualmente la etapa "%s" (número %d) del tema "%s". Descripción de la etapa: "%s". Narración de la etapa: "%s".

%s
Cada prompt debe describir una escena distinta, históricamente coherente, en formato vertical 9:16, con estilo fotorrealista y cinematográfico. Responde SOLO con un arreglo JSON de tres cadenas, sin texto adicional.`,
			stage.Name, stage.Order, topic, stage.Description, script, ctx)
	}
	return fmt.Sprintf(`Act as an art director expert in historical imagery and AI image generation. Create exactly three detailed prompts for an image generator, visually describing the stage "%s" (number %d) of the topic "%s". Stage description: "%s". Stage narration: "%s".

%s
Each prompt must describe a distinct, historically coherent scene in vertical 9:16 format, photorealistic and cinematic in style. Respond ONLY with a JSON array of three strings, no additional text.`,
		stage.Name, stage.Order, topic, stage.Description, script, ctx)
}

func coverPromptsPrompt(language, topic string, allStages []types.Stage) string {
	ctx := stagesContext(language, allStages)
	if language == "es" {
		return fmt.Sprintf(`Actúa como un director de arte. Crea exactamente tres prompts detallados para un generador de imágenes, para la portada de un video cronológico sobre "%s". La portada debe evocar la evolución del tema a través del tiempo.

%s
Formato vertical 9:16, estilo fotorrealista y llamativo. Responde SOLO con un arreglo JSON de tres cadenas, sin texto adicional.`,
			topic, ctx)
	}
	return fmt.Sprintf(`Act as an art director. Create exactly three detailed prompts for an image generator, for the cover of a chronological video about "%s". The cover must evoke the topic's evolution through time.

%s
Vertical 9:16 format, photorealistic and eye-catching style. Respond ONLY with a JSON array of three strings, no additional text.`,
		topic, ctx)
}
